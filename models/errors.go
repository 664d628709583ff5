package models

import (
	"errors"
	"fmt"
)

// Error kinds returned by the store and the relationship engine. Every
// failure leaves the store untouched; callers decide whether to retry.
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileInactive = errors.New("account is inactive")
	ErrProfileExists   = errors.New("profile already exists")
	ErrPageOutOfRange  = errors.New("page number out of range")
)

// ValidationError reports which input field failed a requirement check.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s is required", e.Field)
}

// NewValidationError builds a ValidationError for a missing required field.
func NewValidationError(field string) *ValidationError {
	return &ValidationError{Field: field}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
