package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrConflict      = errors.New("conflict")

	ErrUnknownPromptType = errors.New("unknown prompt type")
	ErrGenerationFailed  = errors.New("generation failed")
	ErrMalformedResponse = errors.New("malformed provider response")
)

// Client-visible messages for generation failures.
const (
	GenerationFallbackMessage = "failed to generate content"
	MalformedResponseMessage  = "invalid response from generation provider"
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// UnknownPromptTypeError is returned when a category label is not in the catalog.
type UnknownPromptTypeError struct {
	Label string
}

func (e *UnknownPromptTypeError) Error() string {
	return "Unknown prompt type: " + e.Label
}

func (e *UnknownPromptTypeError) Unwrap() error { return ErrUnknownPromptType }

// GenerationError describes a failed generation call. Message is safe to show
// to clients. StatusCode is the upstream HTTP status, or 0 when the failure
// happened before a response was received.
type GenerationError struct {
	Message    string
	StatusCode int
	Err        error
}

func (e *GenerationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("generation failed (status %d): %s", e.StatusCode, e.Message)
	}
	return "generation failed: " + e.Message
}

func (e *GenerationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrGenerationFailed}
	}
	return []error{ErrGenerationFailed, e.Err}
}

// ClientError reports whether the upstream rejected the request itself (4xx).
func (e *GenerationError) ClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// NewMalformedResponseError wraps a decoding problem as a generation failure
// with the generic client message.
func NewMalformedResponseError(cause error) *GenerationError {
	err := ErrMalformedResponse
	if cause != nil {
		err = fmt.Errorf("%w: %v", ErrMalformedResponse, cause)
	}
	return &GenerationError{Message: MalformedResponseMessage, Err: err}
}
