package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AnalysisResult is the parsed JSON object returned by the model. The schema
// is owned by the model's prompt contract and is not validated field-by-field.
type AnalysisResult map[string]any

// AnalysisRequest carries one analysis submission through the gateway.
// DocumentID links the archived upload when archival succeeded.
type AnalysisRequest struct {
	Resume         []byte
	JobDescription string
	DocumentID     *uuid.UUID
}

type AnalysisStatus string

const (
	StatusCompleted AnalysisStatus = "completed"
	StatusFailed    AnalysisStatus = "failed"
)

type Analysis struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CacheKey         string         `gorm:"type:char(64);index" json:"cache_key"`
	JobDescription   string         `gorm:"type:text" json:"job_description"`
	ResumeDocumentID *uuid.UUID     `gorm:"type:uuid" json:"resume_document_id,omitempty"`
	Status           AnalysisStatus `gorm:"not null" json:"status"`
	Result           datatypes.JSON `gorm:"type:jsonb" json:"result,omitempty"`
	ErrorMessage     *string        `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt        time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	ResumeDocument *Document `gorm:"foreignKey:ResumeDocumentID" json:"-"`
}

func (Analysis) TableName() string {
	return "analyses"
}
