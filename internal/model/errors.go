package model

import "fmt"

// InvalidInputError reports a missing or malformed request field.
// The core has no I/O, so this is the only failure mode it produces.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Message)
}

// NewInvalidInput builds an InvalidInputError for the given field.
func NewInvalidInput(field, format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Field: field, Message: fmt.Sprintf(format, args...)}
}
