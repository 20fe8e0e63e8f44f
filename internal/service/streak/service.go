// Package streak maintains the consecutive-day visit counter.
package streak

import (
	"log/slog"
	"time"

	"github.com/heartmarshall/dailydose-backend/internal/kvstore"
)

// Service reads and advances the record stored under kvstore.KeyStreak.
type Service struct {
	store kvstore.Store
	loc   *time.Location
	log   *slog.Logger
}

// NewService creates a new Streak service. Calendar days are evaluated in loc;
// a nil loc means time.Local.
func NewService(log *slog.Logger, store kvstore.Store, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		store: store,
		loc:   loc,
		log:   log.With("service", "streak"),
	}
}
