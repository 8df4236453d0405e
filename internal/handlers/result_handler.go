package handlers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ChiragAJain/Placement-Assistant/internal/models"
	"github.com/ChiragAJain/Placement-Assistant/internal/repositories"
	"github.com/ChiragAJain/Placement-Assistant/internal/services"
)

type ResultHandler struct {
	analysisRepo  repositories.AnalysisRepository
	geminiService services.GeminiService
	qdrantService services.QdrantService
}

func NewResultHandler(
	analysisRepo repositories.AnalysisRepository,
	geminiService services.GeminiService,
	qdrantService services.QdrantService,
) *ResultHandler {
	return &ResultHandler{
		analysisRepo:  analysisRepo,
		geminiService: geminiService,
		qdrantService: qdrantService,
	}
}

// HandleGetAnalysis returns a stored analysis record.
func (h *ResultHandler) HandleGetAnalysis(c *fiber.Ctx) error {
	analysisID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid analysis ID format",
		})
	}

	analysis, err := h.analysisRepo.FindByID(analysisID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{
			Error: "Analysis not found",
		})
	}

	response := models.AnalysisRecordResponse{
		ID:             analysis.ID.String(),
		Status:         string(analysis.Status),
		JobDescription: analysis.JobDescription,
		ErrorMessage:   analysis.ErrorMessage,
		CreatedAt:      analysis.CreatedAt.Format(time.RFC3339),
	}

	if len(analysis.Result) > 0 {
		var result models.AnalysisResult
		if err := json.Unmarshal(analysis.Result, &result); err == nil {
			response.Result = result
		}
	}

	return c.JSON(response)
}

// HandleGetSimilar finds previously indexed analyses whose job descriptions
// are close to this one in embedding space.
func (h *ResultHandler) HandleGetSimilar(c *fiber.Ctx) error {
	analysisID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid analysis ID format",
		})
	}

	analysis, err := h.analysisRepo.FindByID(analysisID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{
			Error: "Analysis not found",
		})
	}

	embedding, err := h.geminiService.GenerateEmbedding(c.Context(), analysis.JobDescription)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error:   "Failed to process the request.",
			Details: err.Error(),
		})
	}

	matches, err := h.qdrantService.SearchSimilar(c.Context(), embedding, "job_description", 10)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error:   "Failed to process the request.",
			Details: err.Error(),
		})
	}

	selfID := analysis.ID.String()
	similar := make([]models.SimilarAnalysis, 0, len(matches))
	for _, match := range matches {
		if match.AnalysisID == selfID {
			continue
		}
		similar = append(similar, models.SimilarAnalysis{
			AnalysisID: match.AnalysisID,
			Score:      match.Score,
			Excerpt:    excerpt(match.Text, 200),
		})
	}

	return c.JSON(models.SimilarAnalysesResponse{
		ID:      selfID,
		Similar: similar,
	})
}

func excerpt(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "…"
}
