package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/dailydose-backend/internal/service/content"
)

type contentGenerator interface {
	Generate(ctx context.Context, input content.GenerateInput) (string, error)
}

// GenerateHandler serves the stateless generation endpoint.
type GenerateHandler struct {
	svc contentGenerator
	log *slog.Logger
}

// NewGenerateHandler creates a GenerateHandler.
func NewGenerateHandler(svc contentGenerator, logger *slog.Logger) *GenerateHandler {
	return &GenerateHandler{svc: svc, log: logger.With("handler", "generate")}
}

type generateRequest struct {
	Topic          string   `json:"topic"`
	PromptCategory string   `json:"promptCategory"`
	TopicHistory   []string `json:"topicHistory"`
}

type generateResponse struct {
	Content string `json:"content"`
}

// Generate handles POST /generate.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text, err := h.svc.Generate(r.Context(), content.GenerateInput{
		Topic:          req.Topic,
		PromptCategory: req.PromptCategory,
		TopicHistory:   req.TopicHistory,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{Content: text})
}
