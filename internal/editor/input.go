package editor

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// WorkInput is the form of a work entry. Only presence is checked: a company
// or a position must be given. Dates use the YYYY-MM month format.
type WorkInput struct {
	Company     string `json:"company" validate:"required_without=Position"`
	Position    string `json:"position" validate:"required_without=Company"`
	StartDate   string `json:"start_date" validate:"omitempty,datetime=2006-01"`
	EndDate     string `json:"end_date" validate:"omitempty,datetime=2006-01"`
	IsCurrent   bool   `json:"is_current"`
	Description string `json:"description"`
}

// EducationInput is the form of an education entry. An institution or a
// degree must be given.
type EducationInput struct {
	Institution string `json:"institution" validate:"required_without=Degree"`
	Degree      string `json:"degree" validate:"required_without=Institution"`
	Field       string `json:"field"`
	StartDate   string `json:"start_date" validate:"omitempty,datetime=2006-01"`
	EndDate     string `json:"end_date" validate:"omitempty,datetime=2006-01"`
	IsCurrent   bool   `json:"is_current"`
	Description string `json:"description"`
}

// InputError reports the fields of a form that failed their checks
type InputError struct {
	Form   string
	Fields []FieldProblem
}

// FieldProblem is one failed check
type FieldProblem struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Form, strings.Join(parts, "; "))
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func inputValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			return f.Tag.Get("json")
		})
	})
	return validate
}

func checkInput(form string, input interface{}) error {
	err := inputValidator().Struct(input)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	inputErr := &InputError{Form: form}
	seen := make(map[string]bool)
	for _, fe := range fieldErrs {
		var msg string
		switch fe.Tag() {
		case "required_without":
			pair := []string{fe.Field(), jsonName(fe.StructNamespace(), fe.Param())}
			msg = fmt.Sprintf("%s or %s is required", pair[0], pair[1])
			if seen[pair[1]+"|"+pair[0]] {
				continue
			}
			seen[pair[0]+"|"+pair[1]] = true
		case "datetime":
			msg = fmt.Sprintf("%s must be a month in YYYY-MM format", fe.Field())
		default:
			msg = fmt.Sprintf("%s is invalid", fe.Field())
		}
		inputErr.Fields = append(inputErr.Fields, FieldProblem{Field: fe.Field(), Message: msg})
	}
	return inputErr
}

// jsonName maps the struct field named param, a sibling of the field at
// namespace, to its json name.
func jsonName(namespace, param string) string {
	typeName, _, _ := strings.Cut(namespace, ".")
	var t reflect.Type
	switch typeName {
	case "WorkInput":
		t = reflect.TypeOf(WorkInput{})
	case "EducationInput":
		t = reflect.TypeOf(EducationInput{})
	default:
		return strings.ToLower(param)
	}
	if f, ok := t.FieldByName(param); ok {
		return f.Tag.Get("json")
	}
	return strings.ToLower(param)
}

func (in WorkInput) trimmed() WorkInput {
	in.Company = strings.TrimSpace(in.Company)
	in.Position = strings.TrimSpace(in.Position)
	in.StartDate = strings.TrimSpace(in.StartDate)
	in.EndDate = strings.TrimSpace(in.EndDate)
	in.Description = strings.TrimSpace(in.Description)
	if in.IsCurrent {
		in.EndDate = ""
	}
	return in
}

func (in EducationInput) trimmed() EducationInput {
	in.Institution = strings.TrimSpace(in.Institution)
	in.Degree = strings.TrimSpace(in.Degree)
	in.Field = strings.TrimSpace(in.Field)
	in.StartDate = strings.TrimSpace(in.StartDate)
	in.EndDate = strings.TrimSpace(in.EndDate)
	in.Description = strings.TrimSpace(in.Description)
	if in.IsCurrent {
		in.EndDate = ""
	}
	return in
}
