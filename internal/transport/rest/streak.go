package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/dailydose-backend/internal/domain"
	"github.com/heartmarshall/dailydose-backend/internal/service/streak"
)

type streakService interface {
	Get(ctx context.Context) (domain.Streak, error)
	Touch(ctx context.Context, now time.Time) (streak.TouchResult, error)
}

// StreakHandler serves the visit streak.
type StreakHandler struct {
	svc streakService
	now func() time.Time
	log *slog.Logger
}

// NewStreakHandler creates a StreakHandler.
func NewStreakHandler(svc streakService, logger *slog.Logger) *StreakHandler {
	return &StreakHandler{svc: svc, now: time.Now, log: logger.With("handler", "streak")}
}

type visitResponse struct {
	domain.Streak
	Outcome domain.StreakOutcome `json:"outcome"`
}

// Get handles GET /api/streak.
func (h *StreakHandler) Get(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Get(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// Visit handles POST /api/streak/visit.
func (h *StreakHandler) Visit(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Touch(r.Context(), h.now())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, visitResponse{Streak: res.Streak, Outcome: res.Outcome})
}
