package rendering

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
)

// TemplateError reports a layout template that failed to parse or execute.
// Layout is empty for the page shell and the shared stylesheet.
type TemplateError struct {
	Layout  types.Layout
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	subject := "page"
	if e.Layout != "" {
		subject = string(e.Layout) + " layout"
	}
	if e.Cause != nil {
		return fmt.Sprintf("template error (%s): %s: %v", subject, e.Message, e.Cause)
	}
	return fmt.Sprintf("template error (%s): %s", subject, e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError is a rendering failure outside template execution: a nil
// record or view, or a registry without the default layout.
type RenderError struct {
	Message string
}

func (e *RenderError) Error() string {
	return "render error: " + e.Message
}
