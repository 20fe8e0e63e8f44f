// Package postgres is a kvstore.Store backed by the kv_entries table.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	pg "github.com/heartmarshall/dailydose-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dailydose-backend/internal/domain"
	"github.com/heartmarshall/dailydose-backend/internal/kvstore"
)

const (
	table  = "kv_entries"
	entity = "kv entry"
)

// Store reads and writes kv_entries through the pool or the transaction in ctx.
type Store struct {
	pool *pgxpool.Pool
	tx   *pg.TxManager
	sb   sq.StatementBuilderType
	log  *slog.Logger
}

var _ kvstore.Store = (*Store)(nil)

// New creates a Store. The pool is owned by the caller until Close.
func New(pool *pgxpool.Pool, logger *slog.Logger) *Store {
	return &Store{
		pool: pool,
		tx:   pg.NewTxManager(pool),
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		log:  logger.With("adapter", "postgres_kv"),
	}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := s.sb.Select("value").From(table).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var v string
	if err := pg.QuerierFromCtx(ctx, s.pool).QueryRow(ctx, query, args...).Scan(&v); err != nil {
		return nil, pg.MapError(err, entity, key)
	}
	return []byte(v), nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := s.sb.Insert(table).
		Columns("key", "value", "updated_at").
		Values(key, string(value), time.Now().UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := pg.QuerierFromCtx(ctx, s.pool).Exec(ctx, query, args...); err != nil {
		return pg.MapError(err, entity, key)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	query, args, err := s.sb.Delete(table).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := pg.QuerierFromCtx(ctx, s.pool).Exec(ctx, query, args...); err != nil {
		return pg.MapError(err, entity, key)
	}
	return nil
}

// Update serializes writers of the same key with a transaction-scoped advisory
// lock, so the lock also covers keys that do not exist yet.
func (s *Store) Update(ctx context.Context, key string, fn kvstore.UpdateFunc) error {
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		q := pg.QuerierFromCtx(txCtx, s.pool)
		if _, err := q.Exec(txCtx, "SELECT pg_advisory_xact_lock(hashtext($1))", key); err != nil {
			return pg.MapError(err, entity, key)
		}

		cur, err := s.Get(txCtx, key)
		found := true
		if errors.Is(err, domain.ErrNotFound) {
			cur, found = nil, false
		} else if err != nil {
			return err
		}

		next, err := fn(cur, found)
		if err != nil {
			return err
		}
		return s.Set(txCtx, key, next)
	})
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases the pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}
