// Package content composes prompts, calls the generation provider and keeps
// the per-topic fingerprint history current.
package content

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/dailydose-backend/internal/config"
	"github.com/heartmarshall/dailydose-backend/internal/provider"
	"github.com/heartmarshall/dailydose-backend/internal/service/credential"
)

// AntiRepeatInstruction precedes the fingerprint list appended to prompts of
// topics with history.
const AntiRepeatInstruction = "\n\nPlease provide unique content that is different from previous responses. " +
	"Avoid generating content that would result in these hashes: "

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type historyStore interface {
	Get(ctx context.Context, topic string) ([]string, error)
	Record(ctx context.Context, topic, fp string) ([]string, error)
}

type keyResolver interface {
	Resolve(ctx context.Context) (string, credential.Source, error)
}

// Settings are the fixed parameters of every generation call.
type Settings struct {
	SystemPrompt string
	Temperature  float64
	MaxTokens    int
}

// SettingsFromConfig extracts Settings from the generator configuration.
func SettingsFromConfig(cfg config.GeneratorConfig) Settings {
	return Settings{
		SystemPrompt: cfg.SystemPrompt,
		Temperature:  cfg.Temperature,
		MaxTokens:    cfg.MaxTokens,
	}
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service runs content requests.
type Service struct {
	gen      provider.Generator
	history  historyStore
	keys     keyResolver
	settings Settings
	log      *slog.Logger
}

// NewService creates a new Content service.
func NewService(
	log *slog.Logger,
	gen provider.Generator,
	history historyStore,
	keys keyResolver,
	settings Settings,
) *Service {
	if settings.SystemPrompt == "" {
		settings.SystemPrompt = config.DefaultSystemPrompt
	}
	return &Service{
		gen:      gen,
		history:  history,
		keys:     keys,
		settings: settings,
		log:      log.With("service", "content"),
	}
}
