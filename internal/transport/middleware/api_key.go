package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/dailydose-backend/pkg/ctxutil"
)

// APIKeyHeader carries a per-request provider key that overrides the stored one.
const APIKeyHeader = "X-Api-Key"

// APIKey copies the X-Api-Key header into the request context. Requests
// without the header pass through unchanged.
func APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimSpace(r.Header.Get(APIKeyHeader))
		if key == "" {
			next.ServeHTTP(w, r)
			return
		}
		ctx := ctxutil.WithAPIKey(r.Context(), key)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
