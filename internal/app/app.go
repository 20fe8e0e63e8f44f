package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/dailydose-backend/internal/config"
	"github.com/heartmarshall/dailydose-backend/internal/transport/middleware"
	"github.com/heartmarshall/dailydose-backend/internal/transport/rest"
	"github.com/heartmarshall/dailydose-backend/internal/transport/ws"
)

// Run is the server entry point. It loads configuration, wires the services
// and serves HTTP until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("store", cfg.Store.Backend),
		slog.String("provider", cfg.Generator.Provider),
	)

	svc, err := Build(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build services: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := svc.Close(closeCtx); err != nil {
			logger.Error("close services", slog.String("error", err.Error()))
		}
	}()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(svc.Store, cfg.Store.Backend, Version),
		Generate:   rest.NewGenerateHandler(svc.Content, logger),
		Topics:     rest.NewTopicHandler(svc.Topics, svc.History, logger),
		Streak:     rest.NewStreakHandler(svc.Streak, logger),
		Credential: rest.NewCredentialHandler(svc.Credential, logger),
		Cards:      rest.NewCardHandler(svc.Board, logger),
		Stream:     ws.NewHandler(svc.Hub, cfg.CORS, logger),
	}, limiter, *cfg, logger)

	return NewServer(cfg.Server, handler, logger).Run(ctx)
}
