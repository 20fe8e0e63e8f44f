package streak

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/dailydose-backend/internal/adapter/kv/memory"
	"github.com/heartmarshall/dailydose-backend/internal/domain"
	"github.com/heartmarshall/dailydose-backend/internal/kvstore"
)

func newTestService(t *testing.T, loc *time.Location) (*Service, *memory.Store) {
	t.Helper()
	store := memory.New()
	return NewService(slog.Default(), store, loc), store
}

func seed(t *testing.T, store kvstore.Store, st domain.Streak) {
	t.Helper()
	require.NoError(t, kvstore.SetJSON(context.Background(), store, kvstore.KeyStreak, st))
}

func TestTouch(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		stored    *domain.Streak
		wantCount int
		wantOut   domain.StreakOutcome
	}{
		{"first visit", nil, 1, domain.StreakStarted},
		{"same day", &domain.Streak{Count: 4, LastVisitDate: "2024-03-15"}, 4, domain.StreakKept},
		{"next day", &domain.Streak{Count: 4, LastVisitDate: "2024-03-14"}, 5, domain.StreakExtended},
		{"gap", &domain.Streak{Count: 9, LastVisitDate: "2024-03-12"}, 1, domain.StreakReset},
		{"future date", &domain.Streak{Count: 3, LastVisitDate: "2024-03-16"}, 1, domain.StreakReset},
		{"zero count", &domain.Streak{Count: 0, LastVisitDate: "2024-03-14"}, 1, domain.StreakStarted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, store := newTestService(t, time.UTC)
			if tt.stored != nil {
				seed(t, store, *tt.stored)
			}

			res, err := svc.Touch(context.Background(), now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, res.Outcome)
			assert.Equal(t, tt.wantCount, res.Streak.Count)
			assert.Equal(t, "2024-03-15", res.Streak.LastVisitDate)

			got, err := svc.Get(context.Background())
			require.NoError(t, err)
			assert.Equal(t, res.Streak, got)
		})
	}
}

func TestTouch_MonthBoundary(t *testing.T) {
	t.Parallel()

	svc, store := newTestService(t, time.UTC)
	seed(t, store, domain.Streak{Count: 2, LastVisitDate: "2024-02-29"})

	res, err := svc.Touch(context.Background(), time.Date(2024, 3, 1, 0, 5, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, domain.StreakExtended, res.Outcome)
	assert.Equal(t, 3, res.Streak.Count)
}

func TestTouch_UsesConfiguredTimezone(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+10", 10*60*60)
	svc, store := newTestService(t, loc)
	seed(t, store, domain.Streak{Count: 1, LastVisitDate: "2024-03-15"})

	// 2024-03-15 20:00 UTC is already 2024-03-16 in UTC+10.
	res, err := svc.Touch(context.Background(), time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, domain.StreakExtended, res.Outcome)
	assert.Equal(t, "2024-03-16", res.Streak.LastVisitDate)
}

func TestTouch_CorruptRecordStartsOver(t *testing.T) {
	t.Parallel()

	svc, store := newTestService(t, time.UTC)
	require.NoError(t, store.Set(context.Background(), kvstore.KeyStreak, []byte("garbage")))

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	res, err := svc.Touch(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, domain.StreakStarted, res.Outcome)
	assert.Equal(t, 1, res.Streak.Count)
}

func TestTouch_Repeated(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, time.UTC)
	ctx := context.Background()
	day := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	for i := range 3 {
		res, err := svc.Touch(ctx, day.AddDate(0, 0, i))
		require.NoError(t, err)
		assert.Equal(t, i+1, res.Streak.Count)
	}
	// Second visit on the last day.
	res, err := svc.Touch(ctx, day.AddDate(0, 0, 2).Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Streak.Count)
	assert.Equal(t, domain.StreakKept, res.Outcome)
}

type errStore struct {
	kvstore.Store
}

func (errStore) Update(context.Context, string, kvstore.UpdateFunc) error {
	return errors.New("unavailable")
}

func TestTouch_StoreError(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), errStore{Store: memory.New()}, nil)
	_, err := svc.Touch(context.Background(), time.Now())
	assert.Error(t, err)
}

func TestPreviousDay_DST(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// DST starts 2024-03-10 in New York.
	now := time.Date(2024, 3, 11, 0, 30, 0, 0, loc)
	assert.Equal(t, "2024-03-10", PreviousDay(now, loc))
	assert.Equal(t, "2024-03-11", Day(now, loc))
}
