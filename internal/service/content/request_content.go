package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/dailydose-backend/internal/fingerprint"
	"github.com/heartmarshall/dailydose-backend/internal/prompt"
)

// Result is generated content together with its fingerprint.
type Result struct {
	Content     string
	Fingerprint string
	History     []string
}

// RequestContent runs the full lifecycle for a stored topic: the topic's
// history steers the prompt, and on success the content fingerprint is
// recorded. A failed generation leaves the history unchanged.
func (s *Service) RequestContent(ctx context.Context, input RequestInput) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tmpl, err := prompt.Lookup(input.PromptCategory)
	if err != nil {
		return nil, err
	}

	history, err := s.history.Get(ctx, input.Topic)
	if err != nil {
		return nil, fmt.Errorf("request content: %w", err)
	}

	text, err := s.generate(ctx, tmpl, input.Topic, history)
	if err != nil {
		return nil, err
	}

	fp := fingerprint.Of(text)
	updated, err := s.history.Record(ctx, input.Topic, fp)
	if err != nil {
		// The content is still valid; only repeat avoidance is degraded.
		s.log.ErrorContext(ctx, "record fingerprint",
			slog.String("topic", input.Topic),
			slog.String("error", err.Error()),
		)
		updated = history
	}

	return &Result{Content: text, Fingerprint: fp, History: updated}, nil
}
