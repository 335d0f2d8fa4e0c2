package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds client configuration. Values come from the environment
// and may be overridden by command-line flags in main.
type Config struct {
	ServerURL   string        `env:"JOBWIRE_SERVER,       default=http://localhost:8080"`
	DBPath      string        `env:"JOBWIRE_DB,           default=jobwire-client.db"`
	ListTimeout time.Duration `env:"JOBWIRE_LIST_TIMEOUT, default=10s"`
	LogLevel    string        `env:"JOBWIRE_LOG_LEVEL,    default=info"`
}

// Load reads configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &cfg, nil
}
