package models

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type AnalysisRecordResponse struct {
	ID             string         `json:"id"`
	Status         string         `json:"status"`
	JobDescription string         `json:"job_description"`
	Result         AnalysisResult `json:"result,omitempty"`
	ErrorMessage   *string        `json:"error_message,omitempty"`
	CreatedAt      string         `json:"created_at"`
}

type SimilarAnalysis struct {
	AnalysisID string  `json:"analysis_id"`
	Score      float32 `json:"score"`
	Excerpt    string  `json:"excerpt"`
}

type SimilarAnalysesResponse struct {
	ID      string            `json:"id"`
	Similar []SimilarAnalysis `json:"similar"`
}
