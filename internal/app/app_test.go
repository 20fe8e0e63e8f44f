package app

import (
	"context"
	"log/slog"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/dailydose-backend/internal/config"
	"github.com/heartmarshall/dailydose-backend/internal/domain"
	"github.com/heartmarshall/dailydose-backend/internal/service/topic"
)

func TestNewGenerator(t *testing.T) {
	t.Parallel()

	for _, name := range []string{config.ProviderOpenAI, config.ProviderAnthropic, config.ProviderEcho} {
		gen, err := NewGenerator(config.GeneratorConfig{Provider: name, Model: "m"}, slog.Default())
		require.NoError(t, err, name)
		assert.Equal(t, name, gen.Name())
	}

	_, err := NewGenerator(config.GeneratorConfig{Provider: "gemini"}, slog.Default())
	assert.Error(t, err)
}

func TestOpenStore_UnknownBackend(t *testing.T) {
	t.Parallel()

	_, err := OpenStore(context.Background(), &config.Config{Store: config.StoreConfig{Backend: "etcd"}}, slog.Default())
	assert.Error(t, err)
}

func TestBuild_SQLiteEndToEnd(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cfg := &config.Config{
		Store:     config.StoreConfig{Backend: config.StoreSQLite, SQLitePath: filepath.Join(t.TempDir(), "dd.db")},
		Generator: config.GeneratorConfig{Provider: config.ProviderEcho, Temperature: 0.7, MaxTokens: 500},
		Cards:     config.CardsConfig{MinPerTopic: 2, MaxPerTopic: 3, Concurrency: 2, BatchTimeout: time.Minute, Seed: 1},
		Streak:    config.StreakConfig{Location: time.UTC},
	}

	svc, err := Build(ctx, cfg, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close(context.Background()) })

	_, err = svc.Topics.AddTopic(ctx, topic.AddTopicInput{Name: "Go"})
	require.NoError(t, err)

	batch, err := svc.Board.RunBatch(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, batch.Cards)

	for _, c := range svc.Board.List() {
		assert.Equal(t, domain.CardStateReady, c.State, c.Error)
		assert.NotEmpty(t, c.Content)
	}

	hist, err := svc.History.Get(ctx, "Go")
	require.NoError(t, err)
	assert.NotEmpty(t, hist)
	assert.LessOrEqual(t, len(hist), domain.MaxHistorySize)
}

func TestServer_StopsOnCancel(t *testing.T) {
	t.Parallel()

	srv := NewServer(config.ServerConfig{Host: "127.0.0.1", Port: 0, ShutdownTimeout: time.Second},
		http.NotFoundHandler(), slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
