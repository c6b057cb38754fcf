package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jonathan/resume-profiler/internal/ingestion"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrRateLimited indicates the client exhausted its request budget
type ErrRateLimited struct {
	RetryAfter time.Duration
}

func (e *ErrRateLimited) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		missing     *ingestion.MissingFileError
		unsupported *ingestion.UnsupportedFormatError
		empty       *ingestion.EmptyTextError
		extraction  *ingestion.ExtractionError
		validation  *ErrValidation
		limited     *ErrRateLimited
		tooLarge    *http.MaxBytesError
	)

	switch {
	case errors.As(err, &missing), errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &unsupported):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &empty), errors.As(err, &extraction):
		return http.StatusUnprocessableEntity
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &limited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
