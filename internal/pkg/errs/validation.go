package errs

import "strings"

// ErrValidation is the identity shared by every ValidationError.
var ErrValidation = New("validation failed")

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Field is a shorthand for a single-field ValidationError.
func Field(field string, err error) *ValidationError {
	return NewValidationError(FieldError{Field: field, Message: err.Error()})
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Add(field string, err error) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: err.Error()})
}

// OrNil returns nil when no field errors were collected.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}
