package sqlite

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/dailydose-backend/internal/kvstore"
	"github.com/heartmarshall/dailydose-backend/internal/kvstore/kvtest"
)

func openTestStore(t *testing.T, path string) *Store {
	t.Helper()
	s, err := Open(context.Background(), path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_Conformance(t *testing.T) {
	t.Parallel()

	kvtest.Run(t, func(t *testing.T) kvstore.Store {
		return openTestStore(t, filepath.Join(t.TempDir(), "kv.db"))
	})
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "kv.db")

	s, err := Open(ctx, path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, kvstore.KeyTopics, []byte(`["Go"]`)))
	require.NoError(t, s.Close())

	reopened := openTestStore(t, path)
	got, err := reopened.Get(ctx, kvstore.KeyTopics)
	require.NoError(t, err)
	assert.JSONEq(t, `["Go"]`, string(got))
}
