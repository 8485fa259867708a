// Package server provides the HTTP REST API for the candidate screener.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/candidate-screener/internal/analysis"
	"github.com/jonathan/candidate-screener/internal/decode"
	"github.com/jonathan/candidate-screener/internal/ingestion"
	"github.com/jonathan/candidate-screener/internal/schemas"
	"github.com/jonathan/candidate-screener/internal/scoring"
	"github.com/jonathan/candidate-screener/internal/storage"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validation  *ErrValidation
		format      *decode.FormatError
		schema      *schemas.ValidationError
		tooLarge    *ingestion.TooLargeError
		maxBytes    *http.MaxBytesError
		unreadable  *ingestion.DocumentUnreadableError
		notFound    *analysis.NotFoundError
		keyNotFound *storage.NotFoundError
		upload      *analysis.UploadError
	)

	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errors.As(err, &validation), errors.As(err, &format), errors.As(err, &schema),
		scoring.IsInvalidScoringInput(err):
		return http.StatusBadRequest
	case errors.As(err, &tooLarge), errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &unreadable):
		return http.StatusUnprocessableEntity
	case errors.As(err, &notFound), errors.As(err, &keyNotFound):
		return http.StatusNotFound
	case errors.As(err, &upload):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
