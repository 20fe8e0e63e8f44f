package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/dailydose-backend/internal/domain"
	"github.com/heartmarshall/dailydose-backend/internal/service/cards"
)

type cardBoard interface {
	List() []domain.Card
	Running() bool
	StartBatch(ctx context.Context) (*cards.Batch, error)
	Refresh(ctx context.Context, id string) (domain.Card, error)
}

// CardHandler serves the card board.
type CardHandler struct {
	board cardBoard
	log   *slog.Logger
}

// NewCardHandler creates a CardHandler.
func NewCardHandler(board cardBoard, logger *slog.Logger) *CardHandler {
	return &CardHandler{board: board, log: logger.With("handler", "cards")}
}

type cardsResponse struct {
	BatchID string        `json:"batchId,omitempty"`
	Running bool          `json:"running"`
	Cards   []domain.Card `json:"cards"`
}

// List handles GET /api/cards.
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, cardsResponse{
		Running: h.board.Running(),
		Cards:   h.board.List(),
	})
}

// StartBatch handles POST /api/cards/batch. It answers 202 with Loading
// placeholders; content arrives over the websocket stream or later GETs.
func (h *CardHandler) StartBatch(w http.ResponseWriter, r *http.Request) {
	batch, err := h.board.StartBatch(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, cardsResponse{
		BatchID: batch.ID,
		Running: true,
		Cards:   batch.Cards,
	})
}

// Refresh handles POST /api/cards/{id}/refresh and returns the settled card.
func (h *CardHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	card, err := h.board.Refresh(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}
