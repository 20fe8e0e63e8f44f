package streak

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/dailydose-backend/internal/domain"
	"github.com/heartmarshall/dailydose-backend/internal/kvstore"
)

// TouchResult is the streak after a visit and what the visit changed.
type TouchResult struct {
	Streak  domain.Streak
	Outcome domain.StreakOutcome
}

// Get returns the stored streak. A missing or unreadable record is the zero Streak.
func (s *Service) Get(ctx context.Context) (domain.Streak, error) {
	st, _, err := kvstore.GetJSON[domain.Streak](ctx, s.store, kvstore.KeyStreak)
	if errors.Is(err, kvstore.ErrCorrupt) {
		s.log.WarnContext(ctx, "streak unreadable, treating as empty", slog.String("error", err.Error()))
		return domain.Streak{}, nil
	}
	if err != nil {
		return domain.Streak{}, fmt.Errorf("get streak: %w", err)
	}
	return st, nil
}

// Touch records a visit at now. Same day keeps the count, the following day
// extends it, any other gap resets it to 1.
func (s *Service) Touch(ctx context.Context, now time.Time) (TouchResult, error) {
	today := Day(now, s.loc)
	yesterday := PreviousDay(now, s.loc)

	var outcome domain.StreakOutcome
	st, err := kvstore.UpdateJSON(ctx, s.store, kvstore.KeyStreak, func(cur domain.Streak, found bool) (domain.Streak, error) {
		switch {
		case !found || cur.Count < 1:
			outcome = domain.StreakStarted
			return domain.Streak{Count: 1, LastVisitDate: today}, nil
		case cur.LastVisitDate == today:
			outcome = domain.StreakKept
			return cur, nil
		case cur.LastVisitDate == yesterday:
			outcome = domain.StreakExtended
			return domain.Streak{Count: cur.Count + 1, LastVisitDate: today}, nil
		default:
			outcome = domain.StreakReset
			return domain.Streak{Count: 1, LastVisitDate: today}, nil
		}
	})
	if err != nil {
		return TouchResult{}, fmt.Errorf("touch streak: %w", err)
	}

	if outcome != domain.StreakKept {
		s.log.InfoContext(ctx, "streak updated",
			slog.String("outcome", outcome.String()),
			slog.Int("count", st.Count),
			slog.String("date", st.LastVisitDate),
		)
	}

	return TouchResult{Streak: st, Outcome: outcome}, nil
}
