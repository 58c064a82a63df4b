package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/i18n"
	"github.com/jonathan/resume-builder/internal/schemas"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrBusy indicates the request gave up waiting for a running export
type ErrBusy struct {
	Cause error
}

func (e *ErrBusy) Error() string {
	return fmt.Sprintf("export unavailable: %v", e.Cause)
}

func (e *ErrBusy) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validation *ErrValidation
	var schemaErr *schemas.ValidationError
	var langErr *i18n.UnsupportedLanguageError
	var busy *ErrBusy
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &validation), errors.As(err, &schemaErr), errors.As(err, &langErr):
		return http.StatusBadRequest
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, export.ErrTargetNotFound):
		return http.StatusUnprocessableEntity
	case errors.As(err, &busy):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
