package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/dailydose-backend/internal/service/credential"
)

type credentialService interface {
	Save(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Status(ctx context.Context) (credential.Status, error)
}

// CredentialHandler manages the stored provider API key. The key is never
// returned, only a masked hint.
type CredentialHandler struct {
	svc credentialService
	log *slog.Logger
}

// NewCredentialHandler creates a CredentialHandler.
func NewCredentialHandler(svc credentialService, logger *slog.Logger) *CredentialHandler {
	return &CredentialHandler{svc: svc, log: logger.With("handler", "credential")}
}

type saveCredentialRequest struct {
	APIKey string `json:"apiKey"`
}

type credentialResponse struct {
	Configured bool   `json:"configured"`
	Source     string `json:"source"`
	Hint       string `json:"hint,omitempty"`
}

// Get handles GET /api/credential.
func (h *CredentialHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.writeStatus(w, r, http.StatusOK)
}

// Put handles PUT /api/credential.
func (h *CredentialHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req saveCredentialRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.Save(r.Context(), req.APIKey); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeStatus(w, r, http.StatusOK)
}

// Delete handles DELETE /api/credential.
func (h *CredentialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Clear(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CredentialHandler) writeStatus(w http.ResponseWriter, r *http.Request, code int) {
	st, err := h.svc.Status(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, code, credentialResponse{
		Configured: st.Configured,
		Source:     string(st.Source),
		Hint:       st.Hint,
	})
}
