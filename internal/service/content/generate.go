package content

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/dailydose-backend/internal/domain"
	"github.com/heartmarshall/dailydose-backend/internal/prompt"
	"github.com/heartmarshall/dailydose-backend/internal/provider"
)

// Generate produces content for a topic and category using the history given
// in input. Nothing is persisted. An unknown category fails before the
// provider is called.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	tmpl, err := prompt.Lookup(input.PromptCategory)
	if err != nil {
		return "", err
	}

	return s.generate(ctx, tmpl, input.Topic, input.TopicHistory)
}

func (s *Service) generate(ctx context.Context, tmpl prompt.Template, topic string, history []string) (string, error) {
	key, source, err := s.keys.Resolve(ctx)
	if err != nil {
		return "", &domain.GenerationError{Message: domain.GenerationFallbackMessage, Err: err}
	}

	req := provider.Request{
		SystemPrompt: s.settings.SystemPrompt,
		UserPrompt:   ComposePrompt(tmpl, topic, history),
		Temperature:  s.settings.Temperature,
		MaxTokens:    s.settings.MaxTokens,
		APIKey:       key,
	}

	start := time.Now()
	text, err := s.gen.Generate(ctx, req)
	if err != nil {
		gerr := mapProviderError(err)
		s.log.WarnContext(ctx, "generation failed",
			slog.String("provider", s.gen.Name()),
			slog.String("topic", topic),
			slog.String("category", tmpl.Category),
			slog.Int("status", gerr.StatusCode),
			slog.String("error", err.Error()),
		)
		return "", gerr
	}

	// Blank content is malformed; it never becomes a Ready card.
	text = strings.TrimSpace(text)
	if text == "" {
		return "", domain.NewMalformedResponseError(provider.ErrEmptyResponse)
	}

	s.log.DebugContext(ctx, "content generated",
		slog.String("provider", s.gen.Name()),
		slog.String("key_source", string(source)),
		slog.String("topic", topic),
		slog.String("category", tmpl.Category),
		slog.Int("history", len(history)),
		slog.Duration("duration", time.Since(start)),
	)

	return text, nil
}

// mapProviderError converts adapter errors into a GenerationError carrying a
// client-visible message and the upstream status when known.
func mapProviderError(err error) *domain.GenerationError {
	if errors.Is(err, provider.ErrEmptyResponse) {
		return domain.NewMalformedResponseError(err)
	}

	var perr *provider.Error
	if errors.As(err, &perr) {
		msg := strings.TrimSpace(perr.Message)
		if msg == "" {
			msg = domain.GenerationFallbackMessage
		}
		return &domain.GenerationError{Message: msg, StatusCode: perr.StatusCode, Err: err}
	}

	return &domain.GenerationError{Message: domain.GenerationFallbackMessage, Err: err}
}
