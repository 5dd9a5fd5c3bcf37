// Package config loads server configuration from the environment.
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/storyforge/storyforge-api/internal/errors"
)

// Config is the full server configuration, populated from STORYFORGE_*
// environment variables
type Config struct {
	HTTPPort int    `envconfig:"HTTP_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	Redis  RedisConfig
	OpenAI OpenAIConfig

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// RedisConfig configures the redis connection
type RedisConfig struct {
	Address  string `envconfig:"REDIS_ADDRESS" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	UseTLS   bool   `envconfig:"REDIS_USE_TLS" default:"false"`
}

// OpenAIConfig configures the language model provider. An empty APIKey
// means the server runs with the noop provider and deterministic
// fallbacks everywhere.
type OpenAIConfig struct {
	APIKey  string        `envconfig:"OPENAI_API_KEY"`
	BaseURL string        `envconfig:"OPENAI_BASE_URL"`
	Model   string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	Timeout time.Duration `envconfig:"OPENAI_TIMEOUT" default:"60s"`
}

// Load reads .env (when present) and the environment
func Load() (*Config, error) {
	// Missing .env is fine; the environment wins either way
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("storyforge", &cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to process environment config")
	}

	return &cfg, nil
}
