package topic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/dailydose-backend/internal/kvstore"
)

// ListTopics returns topics in insertion order. A corrupt stored value is
// treated as an empty set.
func (s *Service) ListTopics(ctx context.Context) ([]string, error) {
	topics, _, err := kvstore.GetJSON[[]string](ctx, s.store, kvstore.KeyTopics)
	if errors.Is(err, kvstore.ErrCorrupt) {
		s.log.WarnContext(ctx, "topics unreadable, treating as empty", slog.String("error", err.Error()))
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	if topics == nil {
		topics = []string{}
	}
	return topics, nil
}
