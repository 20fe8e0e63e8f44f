// Package history keeps the per-topic fingerprint history used to steer the
// provider away from repeating content.
package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/dailydose-backend/internal/domain"
	"github.com/heartmarshall/dailydose-backend/internal/kvstore"
)

// Service reads and updates history:<topic> keys.
type Service struct {
	store kvstore.Store
	log   *slog.Logger
}

// NewService creates a new History service.
func NewService(log *slog.Logger, store kvstore.Store) *Service {
	return &Service{
		store: store,
		log:   log.With("service", "history"),
	}
}

// Get returns the topic's fingerprints, most recent first. Missing or
// unreadable history is empty.
func (s *Service) Get(ctx context.Context, topic string) ([]string, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, domain.NewValidationError("topic", "required")
	}

	fps, _, err := kvstore.GetJSON[[]string](ctx, s.store, kvstore.HistoryKey(topic))
	if errors.Is(err, kvstore.ErrCorrupt) {
		s.log.WarnContext(ctx, "history unreadable, treating as empty",
			slog.String("topic", topic),
			slog.String("error", err.Error()),
		)
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}
	if fps == nil {
		fps = []string{}
	}
	return fps, nil
}

// Record moves fp to the front of the topic's history, inserting it if
// absent, and returns the resulting history.
func (s *Service) Record(ctx context.Context, topic, fp string) ([]string, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, domain.NewValidationError("topic", "required")
	}
	if fp == "" {
		return nil, domain.NewValidationError("fingerprint", "required")
	}

	fps, err := kvstore.UpdateJSON(ctx, s.store, kvstore.HistoryKey(topic), func(cur []string, _ bool) ([]string, error) {
		return domain.PushFingerprint(cur, fp), nil
	})
	if err != nil {
		return nil, fmt.Errorf("record history: %w", err)
	}

	s.log.DebugContext(ctx, "fingerprint recorded",
		slog.String("topic", topic),
		slog.String("fingerprint", fp),
		slog.Int("size", len(fps)),
	)

	return fps, nil
}

// Clear forgets the topic's history.
func (s *Service) Clear(ctx context.Context, topic string) error {
	if strings.TrimSpace(topic) == "" {
		return domain.NewValidationError("topic", "required")
	}
	if err := s.store.Delete(ctx, kvstore.HistoryKey(topic)); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	s.log.InfoContext(ctx, "history cleared", slog.String("topic", topic))
	return nil
}
