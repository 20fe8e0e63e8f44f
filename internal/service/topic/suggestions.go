package topic

import (
	"context"
	"slices"
)

// Suggestions returns SuggestedTopics not yet in the topic set.
func (s *Service) Suggestions(ctx context.Context) ([]string, error) {
	topics, err := s.ListTopics(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(SuggestedTopics))
	for _, t := range SuggestedTopics {
		if !slices.Contains(topics, t) {
			out = append(out, t)
		}
	}
	return out, nil
}
