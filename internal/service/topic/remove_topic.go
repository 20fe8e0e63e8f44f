package topic

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/dailydose-backend/internal/domain"
	"github.com/heartmarshall/dailydose-backend/internal/kvstore"
)

// RemoveTopic deletes a topic and returns the updated list. The topic's
// fingerprint history is kept so re-adding it continues to avoid repeats.
func (s *Service) RemoveTopic(ctx context.Context, input RemoveTopicInput) ([]string, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := domain.NormalizeTopicName(input.Name)

	topics, err := kvstore.UpdateJSON(ctx, s.store, kvstore.KeyTopics, func(cur []string, _ bool) ([]string, error) {
		i := slices.Index(cur, name)
		if i < 0 {
			return nil, fmt.Errorf("topic %q: %w", name, domain.ErrNotFound)
		}
		return slices.Delete(cur, i, i+1), nil
	})
	if err != nil {
		return nil, fmt.Errorf("remove topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic removed",
		slog.String("name", name),
		slog.Int("total", len(topics)),
	)

	return topics, nil
}
