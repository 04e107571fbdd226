package domain

import "strings"

// FieldError is one field-level validation failure, rendered inline next
// to the offending form field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError is the failure variant of the validation stage: the
// accumulated structural and semantic field errors for one submission.
// Callers re-render the form with these and the echoed input.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
