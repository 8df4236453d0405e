package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ChiragAJain/Placement-Assistant/internal/models"
	"github.com/ChiragAJain/Placement-Assistant/internal/repositories"
	"github.com/ChiragAJain/Placement-Assistant/internal/services"
)

type AnalyzeHandler struct {
	analyzer       services.AnalyzerService
	docRepo        repositories.DocumentRepository
	storageService services.StorageService
	maxFileSize    int64
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	docRepo repositories.DocumentRepository,
	storageService services.StorageService,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:       analyzer,
		docRepo:        docRepo,
		storageService: storageService,
		maxFileSize:    maxFileSize,
	}
}

// HandleIndex serves the upload page.
func (h *AnalyzeHandler) HandleIndex(c *fiber.Ctx) error {
	c.Type("html")
	return c.SendString(indexPage)
}

// HandleAnalyze handles POST /analyze: multipart form with a "resume" file
// and a "job_description" text field.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return writeAnalysisError(c, models.ErrInvalidInput)
	}

	jobDescription := strings.TrimSpace(c.FormValue("job_description"))
	if jobDescription == "" {
		return writeAnalysisError(c, models.ErrInvalidInput)
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	resume, err := readUpload(fileHeader)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Could not read the uploaded resume file.",
		})
	}

	docID := h.archiveResume(fileHeader)

	result, err := h.analyzer.Analyze(c.Context(), models.AnalysisRequest{
		Resume:         resume,
		JobDescription: jobDescription,
		DocumentID:     docID,
	})
	if err != nil {
		return writeAnalysisError(c, err)
	}

	return c.JSON(result)
}

// archiveResume keeps a copy of the upload and records it. Best effort: the
// analysis proceeds without a document link when archival fails.
func (h *AnalyzeHandler) archiveResume(fileHeader *multipart.FileHeader) *uuid.UUID {
	filename, filePath, err := h.storageService.SaveFile(fileHeader)
	if err != nil {
		log.Printf("⚠️  Failed to archive resume: %v\n", err)
		return nil
	}

	doc := models.Document{
		ID:               uuid.New(),
		Filename:         filename,
		OriginalFileName: fileHeader.Filename,
		FilePath:         filePath,
		SizeBytes:        fileHeader.Size,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.docRepo.Create(&doc); err != nil {
		log.Printf("⚠️  Failed to record resume document: %v\n", err)
		h.storageService.DeleteFile(filename)
		return nil
	}

	return &doc.ID
}

func readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return io.ReadAll(src)
}

// writeAnalysisError converts the gateway's error taxonomy into the JSON
// bodies and status codes of the public contract.
func writeAnalysisError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Resume file or job description is missing.",
		})
	case errors.Is(err, models.ErrRateLimited):
		return c.Status(fiber.StatusTooManyRequests).JSON(models.ErrorResponse{
			Error:   "API rate limit exceeded.",
			Details: "You've made too many requests in a short period. Please wait a minute and try again.",
		})
	default:
		log.Printf("❌ Analysis failed: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error:   "Failed to process the request.",
			Details: err.Error(),
		})
	}
}
