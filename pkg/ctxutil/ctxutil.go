package ctxutil

import "context"

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	apiKeyKey    ctxKey = "api_key"
)

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithAPIKey stores a request-scoped provider API key in the context.
// An empty key leaves the context unchanged.
func WithAPIKey(ctx context.Context, key string) context.Context {
	if key == "" {
		return ctx
	}
	return context.WithValue(ctx, apiKeyKey, key)
}

// APIKeyFromCtx extracts the request-scoped API key.
// Returns an empty string and false if absent.
func APIKeyFromCtx(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(apiKeyKey).(string)
	if !ok || key == "" {
		return "", false
	}
	return key, true
}
