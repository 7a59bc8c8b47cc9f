package catalog

import (
	"errors"
	"fmt"
)

// ValidationError reports reference data that breaks a catalog invariant.
type ValidationError struct {
	Field   string // e.g. "crystals[3].chakra"
	Message string
}

// NewValidationError creates a validation error for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "Validation Error: " + e.Message
	}
	return fmt.Sprintf("Validation Error: %s: %s", e.Field, e.Message)
}

// IsValidationError checks if an error is, or wraps, a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
