package topic

import (
	"unicode/utf8"

	"github.com/heartmarshall/dailydose-backend/internal/domain"
)

// AddTopicInput holds the parameters for adding a topic.
type AddTopicInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i AddTopicInput) Validate() error {
	var errs []domain.FieldError

	name := domain.NormalizeTopicName(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > MaxTopicNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RemoveTopicInput holds the parameters for removing a topic.
type RemoveTopicInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i RemoveTopicInput) Validate() error {
	if domain.NormalizeTopicName(i.Name) == "" {
		return domain.NewValidationError("name", "required")
	}
	return nil
}
