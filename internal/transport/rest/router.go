package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/dailydose-backend/internal/config"
	"github.com/heartmarshall/dailydose-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health     *HealthHandler
	Generate   *GenerateHandler
	Topics     *TopicHandler
	Streak     *StreakHandler
	Credential *CredentialHandler
	Cards      *CardHandler
	// Stream serves the card event websocket. Nil leaves the route unmounted.
	Stream http.Handler
}

// NewRouter builds the HTTP handler. Routes that call the generation
// provider are rate limited per client IP.
func NewRouter(h Handlers, limiter *middleware.RateLimiter, cfg config.Config, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	limit := limiter.Limit(cfg.RateLimit.GeneratePerMinute)

	// Health
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	// Generation
	mux.Handle("POST /generate", middleware.Wrap(h.Generate.Generate, limit))
	mux.HandleFunc("GET /api/prompts", Prompts)

	// Topics and history
	mux.HandleFunc("GET /api/topics", h.Topics.List)
	mux.HandleFunc("POST /api/topics", h.Topics.Add)
	mux.HandleFunc("GET /api/topics/suggestions", h.Topics.Suggestions)
	mux.HandleFunc("DELETE /api/topics/{name}", h.Topics.Remove)
	mux.HandleFunc("GET /api/topics/{name}/history", h.Topics.History)
	mux.HandleFunc("DELETE /api/topics/{name}/history", h.Topics.ClearHistory)

	// Streak
	mux.HandleFunc("GET /api/streak", h.Streak.Get)
	mux.HandleFunc("POST /api/streak/visit", h.Streak.Visit)

	// Credential
	mux.HandleFunc("GET /api/credential", h.Credential.Get)
	mux.HandleFunc("PUT /api/credential", h.Credential.Put)
	mux.HandleFunc("DELETE /api/credential", h.Credential.Delete)

	// Cards
	mux.HandleFunc("GET /api/cards", h.Cards.List)
	mux.Handle("POST /api/cards/batch", middleware.Wrap(h.Cards.StartBatch, limit))
	mux.Handle("POST /api/cards/{id}/refresh", middleware.Wrap(h.Cards.Refresh, limit))
	if h.Stream != nil {
		mux.Handle("GET /ws/cards", h.Stream)
	}

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.APIKey,
	)(mux)
}
