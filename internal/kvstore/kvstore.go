// Package kvstore defines the persisted key-value contract shared by all
// storage backends and the logical key layout of the application.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/heartmarshall/dailydose-backend/internal/domain"
)

// Logical keys.
const (
	KeyTopics     = "topics"
	KeyStreak     = "streak"
	KeyCredential = "credential"

	historyPrefix = "history:"
)

// HistoryKey returns the key holding the fingerprint history of topic.
func HistoryKey(topic string) string {
	return historyPrefix + topic
}

// ErrCorrupt is wrapped by GetJSON when a stored value does not decode.
var ErrCorrupt = errors.New("kvstore: corrupt value")

// UpdateFunc receives the current value (found=false when the key is absent)
// and returns the value to store.
type UpdateFunc func(current []byte, found bool) ([]byte, error)

// Store is a persistent map of JSON documents.
// Get returns domain.ErrNotFound for missing keys.
// Update runs fn and writes its result atomically with respect to other
// Update calls on the same key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Update(ctx context.Context, key string, fn UpdateFunc) error
	Ping(ctx context.Context) error
	Close() error
}

// GetJSON decodes the value at key into a T. found is false when the key is absent.
func GetJSON[T any](ctx context.Context, s Store, key string) (v T, found bool, err error) {
	raw, err := s.Get(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return v, false, nil
	}
	if err != nil {
		return v, false, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, true, fmt.Errorf("decode %q: %w: %w", key, ErrCorrupt, err)
	}
	return v, true, nil
}

// SetJSON encodes v and stores it at key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("kvstore: encode %q: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}

// UpdateJSON is Update over decoded values. A stored value that fails to
// decode is handed to fn as the zero T with found=false.
func UpdateJSON[T any](ctx context.Context, s Store, key string, fn func(current T, found bool) (T, error)) (T, error) {
	var result T
	err := s.Update(ctx, key, func(raw []byte, found bool) ([]byte, error) {
		var cur T
		if found {
			if err := json.Unmarshal(raw, &cur); err != nil {
				var zero T
				cur, found = zero, false
			}
		}
		next, err := fn(cur, found)
		if err != nil {
			return nil, err
		}
		encoded, err := json.Marshal(next)
		if err != nil {
			return nil, fmt.Errorf("kvstore: encode %q: %w", key, err)
		}
		result = next
		return encoded, nil
	})
	return result, err
}
