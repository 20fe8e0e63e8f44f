package content

import (
	"strings"

	"github.com/heartmarshall/dailydose-backend/internal/domain"
)

// GenerateInput is a stateless generation request. TopicHistory is supplied
// by the caller instead of being read from the store.
type GenerateInput struct {
	Topic          string
	PromptCategory string
	TopicHistory   []string
}

// Validate checks all fields and collects all errors. The category is
// resolved separately so that an unknown label surfaces as its own error.
func (i GenerateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Topic) == "" {
		errs = append(errs, domain.FieldError{Field: "topic", Message: "required"})
	}
	if len(i.TopicHistory) > 50 {
		errs = append(errs, domain.FieldError{Field: "topicHistory", Message: "too many entries"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RequestInput asks for content for a stored topic.
type RequestInput struct {
	Topic          string
	PromptCategory string
}

// Validate checks all fields.
func (i RequestInput) Validate() error {
	if strings.TrimSpace(i.Topic) == "" {
		return domain.NewValidationError("topic", "required")
	}
	return nil
}
