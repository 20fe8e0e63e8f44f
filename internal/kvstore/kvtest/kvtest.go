// Package kvtest is a behavioural test suite shared by every kvstore backend.
package kvtest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/dailydose-backend/internal/domain"
	"github.com/heartmarshall/dailydose-backend/internal/kvstore"
)

// Run exercises newStore against the kvstore.Store contract. newStore must
// return an isolated, empty store for each call.
func Run(t *testing.T, newStore func(t *testing.T) kvstore.Store) {
	t.Helper()

	t.Run("GetMissing", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Get(context.Background(), "missing")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound), "got %v", err)
	})

	t.Run("SetGetOverwrite", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		require.NoError(t, s.Set(ctx, kvstore.KeyTopics, []byte(`["Go"]`)))
		got, err := s.Get(ctx, kvstore.KeyTopics)
		require.NoError(t, err)
		assert.JSONEq(t, `["Go"]`, string(got))

		require.NoError(t, s.Set(ctx, kvstore.KeyTopics, []byte(`["Go","Rust"]`)))
		got, err = s.Get(ctx, kvstore.KeyTopics)
		require.NoError(t, err)
		assert.JSONEq(t, `["Go","Rust"]`, string(got))
	})

	t.Run("KeysWithSpacesAndColons", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		key := kvstore.HistoryKey("System Design: basics")
		require.NoError(t, s.Set(ctx, key, []byte(`["a1"]`)))
		got, err := s.Get(ctx, key)
		require.NoError(t, err)
		assert.JSONEq(t, `["a1"]`, string(got))
	})

	t.Run("Delete", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		require.NoError(t, s.Set(ctx, kvstore.KeyCredential, []byte(`"k"`)))
		require.NoError(t, s.Delete(ctx, kvstore.KeyCredential))
		_, err := s.Get(ctx, kvstore.KeyCredential)
		assert.True(t, errors.Is(err, domain.ErrNotFound))

		// Deleting a missing key is not an error.
		require.NoError(t, s.Delete(ctx, "never-set"))
	})

	t.Run("UpdateCreatesAndModifies", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		err := s.Update(ctx, kvstore.KeyStreak, func(cur []byte, found bool) ([]byte, error) {
			assert.False(t, found)
			return []byte(`{"count":1}`), nil
		})
		require.NoError(t, err)

		err = s.Update(ctx, kvstore.KeyStreak, func(cur []byte, found bool) ([]byte, error) {
			assert.True(t, found)
			assert.JSONEq(t, `{"count":1}`, string(cur))
			return []byte(`{"count":2}`), nil
		})
		require.NoError(t, err)

		got, err := s.Get(ctx, kvstore.KeyStreak)
		require.NoError(t, err)
		assert.JSONEq(t, `{"count":2}`, string(got))
	})

	t.Run("UpdateErrorLeavesValue", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "k", []byte(`1`)))

		boom := errors.New("boom")
		err := s.Update(ctx, "k", func([]byte, bool) ([]byte, error) { return nil, boom })
		require.ErrorIs(t, err, boom)

		got, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.JSONEq(t, `1`, string(got))
	})

	t.Run("ConcurrentUpdatesDoNotLoseWrites", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		const workers = 8
		const perWorker = 5

		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < perWorker; i++ {
					err := s.Update(ctx, "counter", func(cur []byte, found bool) ([]byte, error) {
						n := 0
						if found {
							if err := json.Unmarshal(cur, &n); err != nil {
								return nil, err
							}
						}
						return []byte(fmt.Sprint(n + 1)), nil
					})
					if err != nil {
						errs <- err
						return
					}
				}
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		got, err := s.Get(ctx, "counter")
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprint(workers*perWorker), string(got))
	})

	t.Run("Ping", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Ping(context.Background()))
	})
}
