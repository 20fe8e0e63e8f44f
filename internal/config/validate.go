package config

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Store.validate(); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	if c.Store.Backend == StorePostgres && strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required for the postgres store backend")
	}

	if c.Store.Backend == StoreRedis && strings.TrimSpace(c.Redis.Addr) == "" {
		return fmt.Errorf("redis.addr is required for the redis store backend")
	}

	if err := c.Generator.validate(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}

	if err := c.Cards.validate(); err != nil {
		return fmt.Errorf("cards: %w", err)
	}

	if err := c.Streak.validate(); err != nil {
		return fmt.Errorf("streak: %w", err)
	}

	if c.Credential.Secret != "" && len(c.Credential.Secret) < 16 {
		return fmt.Errorf("credential.secret must be at least 16 characters (got %d)", len(c.Credential.Secret))
	}

	if c.RateLimit.GeneratePerMinute < 0 {
		return fmt.Errorf("rate_limit.generate_per_minute must be >= 0 (got %d)", c.RateLimit.GeneratePerMinute)
	}

	return nil
}

func (s *StoreConfig) validate() error {
	backends := []string{StoreMemory, StoreSQLite, StorePostgres, StoreRedis}
	if !slices.Contains(backends, s.Backend) {
		return fmt.Errorf("backend must be one of %s (got %q)", strings.Join(backends, ", "), s.Backend)
	}
	if s.Backend == StoreSQLite && strings.TrimSpace(s.SQLitePath) == "" {
		return fmt.Errorf("sqlite_path is required for the sqlite backend")
	}
	return nil
}

func (g *GeneratorConfig) validate() error {
	providers := []string{ProviderOpenAI, ProviderAnthropic, ProviderEcho}
	if !slices.Contains(providers, g.Provider) {
		return fmt.Errorf("provider must be one of %s (got %q)", strings.Join(providers, ", "), g.Provider)
	}
	if g.Temperature < 0 || g.Temperature > 2 {
		return fmt.Errorf("temperature must be in [0, 2] (got %v)", g.Temperature)
	}
	if g.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", g.MaxTokens)
	}
	if g.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", g.Timeout)
	}
	if strings.TrimSpace(g.SystemPrompt) == "" {
		g.SystemPrompt = DefaultSystemPrompt
	}
	return nil
}

func (c *CardsConfig) validate() error {
	if c.MinPerTopic < 0 {
		return fmt.Errorf("min_per_topic must be >= 0 (got %d)", c.MinPerTopic)
	}
	if c.MaxPerTopic < c.MinPerTopic {
		return fmt.Errorf("max_per_topic must be >= min_per_topic (got %d < %d)", c.MaxPerTopic, c.MinPerTopic)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be >= 1 (got %d)", c.Concurrency)
	}
	if c.BatchTimeout <= 0 {
		return fmt.Errorf("batch_timeout must be > 0 (got %v)", c.BatchTimeout)
	}
	return nil
}

func (s *StreakConfig) validate() error {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", s.Timezone, err)
	}
	s.Location = loc
	return nil
}
