package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	kvmemory "github.com/heartmarshall/dailydose-backend/internal/adapter/kv/memory"
	kvpostgres "github.com/heartmarshall/dailydose-backend/internal/adapter/kv/postgres"
	kvredis "github.com/heartmarshall/dailydose-backend/internal/adapter/kv/redis"
	kvsqlite "github.com/heartmarshall/dailydose-backend/internal/adapter/kv/sqlite"
	"github.com/heartmarshall/dailydose-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dailydose-backend/internal/config"
	"github.com/heartmarshall/dailydose-backend/internal/kvstore"
	"github.com/heartmarshall/dailydose-backend/migrations"
)

// OpenStore opens the key-value backend selected by cfg.Store.Backend.
// SQL backends are migrated before they are returned.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (kvstore.Store, error) {
	switch cfg.Store.Backend {
	case config.StoreMemory:
		logger.Warn("memory store selected, data is lost on restart")
		return kvmemory.New(), nil

	case config.StoreSQLite:
		s, err := kvsqlite.Open(ctx, cfg.Store.SQLitePath, logger)
		if err != nil {
			return nil, err
		}
		return s, nil

	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		db := stdlib.OpenDBFromPool(pool)
		err = migrations.Up(ctx, db, goose.DialectPostgres)
		_ = db.Close()
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("postgres: migrate: %w", err)
		}
		return kvpostgres.New(pool, logger), nil

	case config.StoreRedis:
		s, err := kvredis.Open(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}
