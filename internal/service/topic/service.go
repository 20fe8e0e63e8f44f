package topic

import (
	"log/slog"

	"github.com/heartmarshall/dailydose-backend/internal/kvstore"
)

const (
	MaxTopics          = 100
	MaxTopicNameLength = 100
)

// SuggestedTopics are offered to users who have not added them yet.
var SuggestedTopics = []string{
	"Machine Learning",
	"JavaScript",
	"React",
	"Python",
	"Data Science",
	"System Design",
	"Algorithms",
}

// Service manages the ordered topic set stored under kvstore.KeyTopics.
type Service struct {
	store kvstore.Store
	log   *slog.Logger
}

// NewService creates a new Topic service.
func NewService(log *slog.Logger, store kvstore.Store) *Service {
	return &Service{
		store: store,
		log:   log.With("service", "topic"),
	}
}
