package credential

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/dailydose-backend/internal/domain"
	"github.com/heartmarshall/dailydose-backend/internal/kvstore"
	"github.com/heartmarshall/dailydose-backend/pkg/ctxutil"
)

// MaxKeyLength bounds a stored API key.
const MaxKeyLength = 512

// Status describes the key a request would use, without revealing it.
type Status struct {
	Configured bool
	Source     Source
	Hint       string
}

// Save stores key, trimmed. The previous value is replaced.
func (s *Service) Save(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return domain.NewValidationError("apiKey", "required")
	}
	if len(key) > MaxKeyLength {
		return domain.NewValidationError("apiKey", "too long")
	}

	stored, err := s.sealer.seal(key)
	if err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	if err := kvstore.SetJSON(ctx, s.store, kvstore.KeyCredential, stored); err != nil {
		return fmt.Errorf("save credential: %w", err)
	}

	s.log.InfoContext(ctx, "credential saved", slog.Bool("sealed", s.sealer != nil))
	return nil
}

// Clear removes the stored key.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, kvstore.KeyCredential); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	s.log.InfoContext(ctx, "credential cleared")
	return nil
}

// Stored returns the stored key. found is false when none is stored or the
// stored value cannot be read.
func (s *Service) Stored(ctx context.Context) (key string, found bool, err error) {
	raw, ok, err := kvstore.GetJSON[string](ctx, s.store, kvstore.KeyCredential)
	if errors.Is(err, kvstore.ErrCorrupt) {
		s.log.WarnContext(ctx, "stored credential unreadable", slog.String("error", err.Error()))
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read credential: %w", err)
	}
	if !ok {
		return "", false, nil
	}

	key, err = s.sealer.open(raw)
	if errors.Is(err, ErrUnsealable) {
		s.log.WarnContext(ctx, "stored credential cannot be unsealed", slog.String("error", err.Error()))
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read credential: %w", err)
	}
	key = strings.TrimSpace(key)
	return key, key != "", nil
}

// Resolve picks the key for the current request: a key attached to ctx,
// then the stored key, then the configured one. An empty key with
// SourceNone means nothing is configured.
func (s *Service) Resolve(ctx context.Context) (string, Source, error) {
	if key, ok := ctxutil.APIKeyFromCtx(ctx); ok {
		return key, SourceRequest, nil
	}

	key, found, err := s.Stored(ctx)
	if err != nil {
		return "", SourceNone, err
	}
	if found {
		return key, SourceStored, nil
	}

	if s.fallback != "" {
		return s.fallback, SourceConfig, nil
	}
	return "", SourceNone, nil
}

// Status reports whether a key is available and a masked hint of it.
func (s *Service) Status(ctx context.Context) (Status, error) {
	key, src, err := s.Resolve(ctx)
	if err != nil {
		return Status{}, err
	}
	if key == "" {
		return Status{Source: SourceNone}, nil
	}
	return Status{Configured: true, Source: src, Hint: Mask(key)}, nil
}

// Mask hides all but the last four characters of key. Short keys are fully masked.
func Mask(key string) string {
	r := []rune(key)
	if len(r) <= 8 {
		return strings.Repeat("•", len(r))
	}
	return strings.Repeat("•", 4) + string(r[len(r)-4:])
}
