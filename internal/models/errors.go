package models

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput means the caller omitted the resume or the job
	// description. Fixable by resubmitting with both fields.
	ErrInvalidInput = errors.New("resume file or job description is missing")

	// ErrRateLimited means the model API reported quota exhaustion. The
	// caller should back off and retry later; the server does not retry.
	ErrRateLimited = errors.New("api rate limit exceeded")
)

// UpstreamError wraps any other failure of the model call or of parsing its
// reply. It is surfaced once with diagnostic detail and never retried.
type UpstreamError struct {
	Op      string
	Details string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Details)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
