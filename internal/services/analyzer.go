package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/genai"
	"gorm.io/datatypes"

	"github.com/ChiragAJain/Placement-Assistant/internal/models"
	"github.com/ChiragAJain/Placement-Assistant/internal/repositories"
)

// AnalysisCache is the injected store of completed analyses keyed by content
// hash. Implementations must be safe for concurrent use.
type AnalysisCache interface {
	Get(key string) (models.AnalysisResult, bool)
	Set(key string, result models.AnalysisResult)
}

type AnalyzerService interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResult, error)
}

type analyzerService struct {
	cache         AnalysisCache
	geminiService GeminiService
	analysisRepo  repositories.AnalysisRepository
	pdfParser     PDFParserService
	indexer       Indexer
	promptBuilder *PromptBuilder
}

func NewAnalyzerService(
	cache AnalysisCache,
	geminiService GeminiService,
	analysisRepo repositories.AnalysisRepository,
	pdfParser PDFParserService,
	indexer Indexer,
) AnalyzerService {
	return &analyzerService{
		cache:         cache,
		geminiService: geminiService,
		analysisRepo:  analysisRepo,
		pdfParser:     pdfParser,
		indexer:       indexer,
		promptBuilder: NewPromptBuilder(),
	}
}

// Analyze runs one resume/job-description pair through the model. Identical
// pairs short-circuit to the cached result without touching the model; a
// cache hit has no side effects beyond the read. Failures are classified into
// models.ErrInvalidInput, models.ErrRateLimited, or *models.UpstreamError and
// never retried.
func (a *analyzerService) Analyze(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResult, error) {
	if len(req.Resume) == 0 || strings.TrimSpace(req.JobDescription) == "" {
		return nil, models.ErrInvalidInput
	}

	key := HashContent(req.Resume, req.JobDescription)

	if result, ok := a.cache.Get(key); ok {
		log.Printf("⚡ Cache HIT, serving stored result for key %s...\n", key[:10])
		return result, nil
	}

	log.Printf("🤖 Cache MISS, calling Gemini for key %s...\n", key[:10])

	prompt := a.promptBuilder.BuildPlacementAnalysisPrompt(req.JobDescription)

	raw, err := a.geminiService.AnalyzeResume(ctx, prompt, req.Resume)
	if err != nil {
		classified := classifyModelError(err)
		a.recordFailure(key, req, classified)
		return nil, classified
	}

	cleaned := ExtractJSONBlock(raw)

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		formatErr := &models.UpstreamError{
			Op:      "parse model response",
			Details: fmt.Sprintf("model returned non-JSON output: %v", err),
			Err:     err,
		}
		a.recordFailure(key, req, formatErr)
		return nil, formatErr
	}

	// Only a fully parsed result is ever cached.
	a.cache.Set(key, result)
	analysisID := a.recordSuccess(key, req, result)
	a.enqueueIndexing(req, key, analysisID)

	return result, nil
}

// classifyModelError maps a Gemini transport error onto the gateway's error
// taxonomy. Quota exhaustion becomes ErrRateLimited so the handler can answer
// 429 instead of a generic 500; everything else is an upstream failure.
func classifyModelError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED" {
			return fmt.Errorf("%w: %s", models.ErrRateLimited, apiErr.Message)
		}
	}
	return &models.UpstreamError{Op: "generate analysis", Err: err}
}

// recordSuccess persists the completed run and returns its ID for the
// indexer. Persistence is supporting history, not part of the response
// contract, so failures only log.
func (a *analyzerService) recordSuccess(key string, req models.AnalysisRequest, result models.AnalysisResult) uuid.UUID {
	analysisID := uuid.New()

	payload, err := json.Marshal(result)
	if err != nil {
		log.Printf("⚠️  Failed to marshal result for record: %v\n", err)
		return analysisID
	}

	analysis := &models.Analysis{
		ID:               analysisID,
		CacheKey:         key,
		JobDescription:   req.JobDescription,
		ResumeDocumentID: req.DocumentID,
		Status:           models.StatusCompleted,
		Result:           datatypes.JSON(payload),
	}

	if err := a.analysisRepo.Create(analysis); err != nil {
		log.Printf("⚠️  Failed to record analysis: %v\n", err)
	}

	return analysisID
}

func (a *analyzerService) recordFailure(key string, req models.AnalysisRequest, cause error) {
	msg := cause.Error()
	analysis := &models.Analysis{
		ID:               uuid.New(),
		CacheKey:         key,
		JobDescription:   req.JobDescription,
		ResumeDocumentID: req.DocumentID,
		Status:           models.StatusFailed,
		ErrorMessage:     &msg,
	}

	if err := a.analysisRepo.Create(analysis); err != nil {
		log.Printf("⚠️  Failed to record failed analysis: %v\n", err)
	}
}

// enqueueIndexing hands the run to the background indexer so similar past
// analyses can be searched later. Text extraction from the PDF is best
// effort; an unparseable file still gets its job description indexed.
func (a *analyzerService) enqueueIndexing(req models.AnalysisRequest, key string, analysisID uuid.UUID) {
	resumeText, err := a.pdfParser.ExtractText(req.Resume)
	if err != nil {
		log.Printf("⚠️  Could not extract resume text for indexing: %v\n", err)
		resumeText = ""
	}

	a.indexer.Enqueue(IndexJob{
		AnalysisID:     analysisID,
		CacheKey:       key,
		ResumeText:     resumeText,
		JobDescription: req.JobDescription,
	})
}
