package ports

import "github.com/aalvaropc/patternkit/internal/domain"

// FieldSource hands the current form values to the validation chain.
type FieldSource interface {
	FieldValues() domain.FormValues
}

// ErrorSink is the per-field error slot registry (one slot per field).
type ErrorSink interface {
	SetFieldError(field domain.FormField, message string)
	ClearFieldError(field domain.FormField)
}
