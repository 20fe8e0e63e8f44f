package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Store      StoreConfig      `yaml:"store"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	Generator  GeneratorConfig  `yaml:"generator"`
	Cards      CardsConfig      `yaml:"cards"`
	Streak     StreakConfig     `yaml:"streak"`
	Credential CredentialConfig `yaml:"credential"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Api-Key,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig limits generation routes per client IP.
type RateLimitConfig struct {
	GeneratePerMinute int           `yaml:"generate_per_minute" env:"RATE_LIMIT_GENERATE_PER_MINUTE" env-default:"30"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
}

// Store backends.
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// StoreConfig selects the key-value backend.
type StoreConfig struct {
	Backend    string `yaml:"backend"     env:"STORE_BACKEND"     env-default:"sqlite"`
	SQLitePath string `yaml:"sqlite_path" env:"STORE_SQLITE_PATH" env-default:"./data/dailydose.db"`
}

// DatabaseConfig holds PostgreSQL connection settings. DSN is required only
// for the postgres backend.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr      string `yaml:"addr"       env:"REDIS_ADDR"       env-default:"localhost:6379"`
	Password  string `yaml:"password"   env:"REDIS_PASSWORD"`
	DB        int    `yaml:"db"         env:"REDIS_DB"         env-default:"0"`
	KeyPrefix string `yaml:"key_prefix" env:"REDIS_KEY_PREFIX" env-default:"dailydose:"`
}

// Generation providers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderEcho      = "echo"
)

// DefaultSystemPrompt is the tutor instruction sent with every request.
const DefaultSystemPrompt = "You are a knowledgeable tutor providing concise, accurate, and engaging educational content. Keep responses focused and under 300 words."

// GeneratorConfig selects and tunes the generation provider. APIKey has no
// default; it is supplied via env, .env or the credential endpoint.
type GeneratorConfig struct {
	Provider     string        `yaml:"provider"      env:"GENERATOR_PROVIDER"      env-default:"openai"`
	BaseURL      string        `yaml:"base_url"      env:"GENERATOR_BASE_URL"`
	Model        string        `yaml:"model"         env:"GENERATOR_MODEL"         env-default:"deepseek-chat"`
	APIKey       string        `yaml:"api_key"       env:"GENERATOR_API_KEY"`
	Temperature  float64       `yaml:"temperature"   env:"GENERATOR_TEMPERATURE"   env-default:"0.7"`
	MaxTokens    int           `yaml:"max_tokens"    env:"GENERATOR_MAX_TOKENS"    env-default:"500"`
	Timeout      time.Duration `yaml:"timeout"       env:"GENERATOR_TIMEOUT"       env-default:"60s"`
	SystemPrompt string        `yaml:"system_prompt" env:"GENERATOR_SYSTEM_PROMPT"`
}

// CardsConfig tunes batch generation.
type CardsConfig struct {
	MinPerTopic  int           `yaml:"min_per_topic" env:"CARDS_MIN_PER_TOPIC" env-default:"2"`
	MaxPerTopic  int           `yaml:"max_per_topic" env:"CARDS_MAX_PER_TOPIC" env-default:"3"`
	Concurrency  int           `yaml:"concurrency"   env:"CARDS_CONCURRENCY"   env-default:"1"`
	BatchTimeout time.Duration `yaml:"batch_timeout" env:"CARDS_BATCH_TIMEOUT" env-default:"5m"`
	Seed         uint64        `yaml:"seed"          env:"CARDS_SEED"          env-default:"0"`
}

// StreakConfig controls how calendar days are computed.
type StreakConfig struct {
	Timezone string `yaml:"timezone" env:"STREAK_TIMEZONE" env-default:"Local"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// CredentialConfig controls at-rest protection of the stored API key.
// An empty Secret stores the key as plain JSON.
type CredentialConfig struct {
	Secret string `yaml:"secret" env:"CREDENTIAL_SECRET"`
}
