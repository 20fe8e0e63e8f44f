package rest

import (
	"net/http"

	"github.com/heartmarshall/dailydose-backend/internal/prompt"
)

type promptsResponse struct {
	Categories []string `json:"categories"`
}

// Prompts handles GET /api/prompts.
func Prompts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, promptsResponse{Categories: prompt.Categories()})
}
