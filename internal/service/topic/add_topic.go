package topic

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/dailydose-backend/internal/domain"
	"github.com/heartmarshall/dailydose-backend/internal/kvstore"
)

// AddTopic appends a normalized topic name. Names are unique by exact match.
// It returns the updated topic list.
func (s *Service) AddTopic(ctx context.Context, input AddTopicInput) ([]string, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := domain.NormalizeTopicName(input.Name)

	topics, err := kvstore.UpdateJSON(ctx, s.store, kvstore.KeyTopics, func(cur []string, _ bool) ([]string, error) {
		if slices.Contains(cur, name) {
			return nil, fmt.Errorf("topic %q: %w", name, domain.ErrAlreadyExists)
		}
		if len(cur) >= MaxTopics {
			return nil, domain.NewValidationError("topics", "limit reached (max 100)")
		}
		return append(cur, name), nil
	})
	if err != nil {
		return nil, fmt.Errorf("add topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic added",
		slog.String("name", name),
		slog.Int("total", len(topics)),
	)

	return topics, nil
}
