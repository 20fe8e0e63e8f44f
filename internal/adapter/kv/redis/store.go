// Package redis is a kvstore.Store backed by Redis strings.
package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/dailydose-backend/internal/config"
	"github.com/heartmarshall/dailydose-backend/internal/domain"
	"github.com/heartmarshall/dailydose-backend/internal/kvstore"
)

const maxUpdateAttempts = 50

// Store keeps every logical key under a configurable prefix.
type Store struct {
	rdb    *goredis.Client
	prefix string
	log    *slog.Logger
}

var _ kvstore.Store = (*Store)(nil)

// Open connects to Redis and verifies the connection.
func Open(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (*Store, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	logger.Info("redis store ready", slog.String("addr", cfg.Addr), slog.Int("db", cfg.DB))

	return New(rdb, cfg.KeyPrefix, logger), nil
}

// New wraps an existing client.
func New(rdb *goredis.Client, prefix string, logger *slog.Logger) *Store {
	return &Store{
		rdb:    rdb,
		prefix: prefix,
		log:    logger.With("adapter", "redis_kv"),
	}
}

func (s *Store) k(key string) string { return s.prefix + key }

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.rdb.Get(ctx, s.k(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, fmt.Errorf("key %q: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %q: %w", key, err)
	}
	return v, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.rdb.Set(ctx, s.k(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, s.k(key)).Err(); err != nil {
		return fmt.Errorf("redis del %q: %w", key, err)
	}
	return nil
}

// Update uses optimistic locking (WATCH/MULTI/EXEC) and retries when another
// client modified the key between read and write.
func (s *Store) Update(ctx context.Context, key string, fn kvstore.UpdateFunc) error {
	rk := s.k(key)

	txf := func(tx *goredis.Tx) error {
		cur, err := tx.Get(ctx, rk).Bytes()
		found := true
		if errors.Is(err, goredis.Nil) {
			cur, found = nil, false
		} else if err != nil {
			return fmt.Errorf("redis get %q: %w", key, err)
		}

		next, err := fn(cur, found)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, rk, next, 0)
			return nil
		})
		return err
	}

	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		err := s.rdb.Watch(ctx, txf, rk)
		if err == nil {
			return nil
		}
		if !errors.Is(err, goredis.TxFailedErr) {
			return err
		}
		s.log.DebugContext(ctx, "optimistic update retry", slog.String("key", key), slog.Int("attempt", attempt))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * time.Millisecond):
		}
	}

	return fmt.Errorf("redis update %q: %w", key, domain.ErrConflict)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.rdb.Close()
}
