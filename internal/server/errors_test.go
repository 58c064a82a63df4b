package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/i18n"
	"github.com/jonathan/resume-builder/internal/schemas"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "body", Message: "record is required"}
	assert.Equal(t, "validation error: body - record is required", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestErrBusy(t *testing.T) {
	err := &ErrBusy{Cause: context.Canceled}
	assert.Equal(t, "export unavailable: context canceled", err.Error())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"schema", &schemas.ValidationError{Errors: []schemas.FieldError{{Field: "(root)", Message: "bad"}}}, http.StatusBadRequest},
		{"language", &i18n.UnsupportedLanguageError{Language: "fr"}, http.StatusBadRequest},
		{"body too large", &http.MaxBytesError{Limit: 10}, http.StatusRequestEntityTooLarge},
		{"target not found", &export.TargetNotFoundError{MountID: "x"}, http.StatusUnprocessableEntity},
		{"wrapped target not found", fmt.Errorf("export: %w", &export.TargetNotFoundError{MountID: "x"}), http.StatusUnprocessableEntity},
		{"rasterize", &export.Error{Stage: "rasterize", Message: "failed", Cause: errors.New("boom")}, http.StatusInternalServerError},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
