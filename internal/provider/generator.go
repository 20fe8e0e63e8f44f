// Package provider defines the provider-neutral generation capability used by
// the content service. Adapters under internal/adapter/llm implement it.
package provider

import (
	"context"
	"errors"
	"fmt"
)

// Request is one chat-style generation call.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float64
	MaxTokens    int
	// APIKey overrides the adapter's configured key when non-empty.
	APIKey string
}

// Generator turns a prompt into text.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
	Name() string
}

// ErrEmptyResponse is returned when the provider answered without usable text.
var ErrEmptyResponse = errors.New("provider returned no content")

// ErrMissingAPIKey is returned when no credential is available for a provider that needs one.
var ErrMissingAPIKey = errors.New("API key is not configured")

// Error is an upstream failure. Message is the provider's own error message
// when one was present in the response payload.
type Error struct {
	Provider   string
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }
