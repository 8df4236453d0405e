package services

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/ChiragAJain/Placement-Assistant/internal/cache"
	"github.com/ChiragAJain/Placement-Assistant/internal/models"
)

// spyGemini counts model invocations so tests can assert cache hits never
// reach the model.
type spyGemini struct {
	response string
	err      error
	calls    int
}

func (s *spyGemini) AnalyzeResume(_ context.Context, _ string, _ []byte) (string, error) {
	s.calls++
	return s.response, s.err
}

func (s *spyGemini) GenerateEmbedding(_ context.Context, _ string) ([]float32, error) {
	return []float32{0.1, 0.2}, nil
}

type fakeAnalysisRepo struct {
	created []*models.Analysis
}

func (f *fakeAnalysisRepo) Create(analysis *models.Analysis) error {
	f.created = append(f.created, analysis)
	return nil
}

func (f *fakeAnalysisRepo) FindByID(_ uuid.UUID) (*models.Analysis, error) {
	return nil, errors.New("analysis not found")
}

func (f *fakeAnalysisRepo) FindLatestByCacheKey(_ string) (*models.Analysis, error) {
	return nil, errors.New("analysis not found")
}

func (f *fakeAnalysisRepo) ListRecent(_ int) ([]models.Analysis, error) {
	return nil, nil
}

type fakePDFParser struct {
	text string
	err  error
}

func (f *fakePDFParser) ExtractText(_ []byte) (string, error) {
	return f.text, f.err
}

type fakeIndexer struct {
	jobs []IndexJob
}

func (f *fakeIndexer) Start(_ context.Context) {}
func (f *fakeIndexer) Stop()                   {}
func (f *fakeIndexer) Enqueue(job IndexJob) {
	f.jobs = append(f.jobs, job)
}

type analyzerFixture struct {
	gemini  *spyGemini
	repo    *fakeAnalysisRepo
	indexer *fakeIndexer
	cache   *cache.Cache
	service AnalyzerService
}

func newAnalyzerFixture(gemini *spyGemini) *analyzerFixture {
	f := &analyzerFixture{
		gemini:  gemini,
		repo:    &fakeAnalysisRepo{},
		indexer: &fakeIndexer{},
		cache:   cache.New(16, 0),
	}
	f.service = NewAnalyzerService(
		f.cache,
		gemini,
		f.repo,
		&fakePDFParser{text: "resume text"},
		f.indexer,
	)
	return f
}

func request() models.AnalysisRequest {
	return models.AnalysisRequest{
		Resume:         []byte("%PDF-1.4 fake resume"),
		JobDescription: "Backend engineer, Go, Bangalore",
	}
}

func TestAnalyzeSecondCallServedFromCache(t *testing.T) {
	f := newAnalyzerFixture(&spyGemini{response: `{"recommendation": "Apply", "match_score": 85}`})
	ctx := context.Background()

	first, err := f.service.Analyze(ctx, request())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := f.service.Analyze(ctx, request())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.gemini.calls != 1 {
		t.Errorf("model calls = %d, want 1 (second request must hit the cache)", f.gemini.calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached result differs: %v vs %v", first, second)
	}
	if len(f.repo.created) != 1 {
		t.Errorf("persisted records = %d, want 1 (cache hit has no side effects)", len(f.repo.created))
	}
	if len(f.indexer.jobs) != 1 {
		t.Errorf("index jobs = %d, want 1", len(f.indexer.jobs))
	}
}

func TestAnalyzeValidation(t *testing.T) {
	f := newAnalyzerFixture(&spyGemini{response: `{}`})
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.AnalysisRequest
	}{
		{"empty resume", models.AnalysisRequest{Resume: nil, JobDescription: "jd"}},
		{"empty description", models.AnalysisRequest{Resume: []byte("pdf"), JobDescription: ""}},
		{"whitespace description", models.AnalysisRequest{Resume: []byte("pdf"), JobDescription: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.Analyze(ctx, tt.req)
			if !errors.Is(err, models.ErrInvalidInput) {
				t.Errorf("error = %v, want ErrInvalidInput", err)
			}
		})
	}

	if f.gemini.calls != 0 {
		t.Errorf("model calls = %d, want 0 for invalid input", f.gemini.calls)
	}
}

func TestAnalyzeQuotaExhaustionIsRateLimited(t *testing.T) {
	quotaErr := genai.APIError{
		Code:    http.StatusTooManyRequests,
		Status:  "RESOURCE_EXHAUSTED",
		Message: "quota exceeded",
	}
	f := newAnalyzerFixture(&spyGemini{err: quotaErr})

	_, err := f.service.Analyze(context.Background(), request())
	if !errors.Is(err, models.ErrRateLimited) {
		t.Fatalf("error = %v, want ErrRateLimited", err)
	}

	if f.cache.Len() != 0 {
		t.Error("failed request must not be cached")
	}
}

func TestAnalyzeTransportFailureIsUpstream(t *testing.T) {
	f := newAnalyzerFixture(&spyGemini{err: errors.New("connection reset")})

	_, err := f.service.Analyze(context.Background(), request())

	var upstream *models.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("error = %v, want *models.UpstreamError", err)
	}
	if errors.Is(err, models.ErrRateLimited) {
		t.Error("generic failure must not be classified as rate limited")
	}
}

func TestAnalyzeMalformedResponseNotCached(t *testing.T) {
	f := newAnalyzerFixture(&spyGemini{response: "I could not produce JSON, sorry."})

	_, err := f.service.Analyze(context.Background(), request())

	var upstream *models.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("error = %v, want *models.UpstreamError", err)
	}
	if f.cache.Len() != 0 {
		t.Error("cache must not contain an entry after a parse failure")
	}
	if len(f.repo.created) != 1 || f.repo.created[0].Status != models.StatusFailed {
		t.Error("expected one failed record to be persisted")
	}
	if len(f.indexer.jobs) != 0 {
		t.Error("failed analysis must not be indexed")
	}
}

func TestAnalyzeFencedResponseParses(t *testing.T) {
	f := newAnalyzerFixture(&spyGemini{
		response: "```json\n{\"recommendation\": \"Apply\", \"strengths\": [\"Go\"]}\n```",
	})

	result, err := f.service.Analyze(context.Background(), request())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result["recommendation"] != "Apply" {
		t.Errorf("recommendation = %v, want Apply", result["recommendation"])
	}
}
