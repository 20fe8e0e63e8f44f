package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/dailydose-backend/internal/service/topic"
)

type topicService interface {
	ListTopics(ctx context.Context) ([]string, error)
	AddTopic(ctx context.Context, input topic.AddTopicInput) ([]string, error)
	RemoveTopic(ctx context.Context, input topic.RemoveTopicInput) ([]string, error)
	Suggestions(ctx context.Context) ([]string, error)
}

type historyService interface {
	Get(ctx context.Context, topic string) ([]string, error)
	Clear(ctx context.Context, topic string) error
}

// TopicHandler serves topic and per-topic history endpoints.
type TopicHandler struct {
	topics  topicService
	history historyService
	log     *slog.Logger
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(topics topicService, history historyService, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{topics: topics, history: history, log: logger.With("handler", "topic")}
}

type topicsResponse struct {
	Topics []string `json:"topics"`
}

type addTopicRequest struct {
	Name string `json:"name"`
}

type historyResponse struct {
	Topic   string   `json:"topic"`
	History []string `json:"history"`
}

// List handles GET /api/topics.
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topics.ListTopics(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, topicsResponse{Topics: topics})
}

// Add handles POST /api/topics.
func (h *TopicHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addTopicRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	topics, err := h.topics.AddTopic(r.Context(), topic.AddTopicInput{Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, topicsResponse{Topics: topics})
}

// Remove handles DELETE /api/topics/{name}.
func (h *TopicHandler) Remove(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topics.RemoveTopic(r.Context(), topic.RemoveTopicInput{Name: r.PathValue("name")})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, topicsResponse{Topics: topics})
}

// Suggestions handles GET /api/topics/suggestions.
func (h *TopicHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topics.Suggestions(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, topicsResponse{Topics: topics})
}

// History handles GET /api/topics/{name}/history.
func (h *TopicHandler) History(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	fps, err := h.history.Get(r.Context(), name)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, historyResponse{Topic: name, History: fps})
}

// ClearHistory handles DELETE /api/topics/{name}/history.
func (h *TopicHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.history.Clear(r.Context(), r.PathValue("name")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
