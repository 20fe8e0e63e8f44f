package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UniqueKey returns a key that does not collide with other tests sharing the container.
func UniqueKey(prefix string) string {
	return prefix + ":" + uuid.New().String()[:8]
}

// SeedEntry writes a raw kv_entries row.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, key, value string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value,
	)
	if err != nil {
		t.Fatalf("testhelper: seed entry %q: %v", key, err)
	}
}

// EntryExists reports whether a kv_entries row exists for key.
func EntryExists(t *testing.T, pool *pgxpool.Pool, key string) bool {
	t.Helper()

	var exists bool
	err := pool.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM kv_entries WHERE key = $1)`, key,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("testhelper: entry exists %q: %v", key, err)
	}
	return exists
}
