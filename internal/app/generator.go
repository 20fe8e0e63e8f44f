package app

import (
	"fmt"
	"log/slog"

	"github.com/heartmarshall/dailydose-backend/internal/adapter/llm/anthropic"
	"github.com/heartmarshall/dailydose-backend/internal/adapter/llm/echo"
	"github.com/heartmarshall/dailydose-backend/internal/adapter/llm/openai"
	"github.com/heartmarshall/dailydose-backend/internal/config"
	"github.com/heartmarshall/dailydose-backend/internal/provider"
)

// NewGenerator returns the provider adapter selected by cfg.Provider.
func NewGenerator(cfg config.GeneratorConfig, logger *slog.Logger) (provider.Generator, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return openai.New(cfg, logger), nil
	case config.ProviderAnthropic:
		return anthropic.New(cfg, logger), nil
	case config.ProviderEcho:
		return echo.Generator{}, nil
	}
	return nil, fmt.Errorf("unknown generator provider %q", cfg.Provider)
}
