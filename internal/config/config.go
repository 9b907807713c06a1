// Package config loads the rentdesk server configuration from RENTDESK_
// environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/rezkam/rentdesk/internal/env"
)

// Source types.
const (
	SourceMemory   = "memory"
	SourcePostgres = "postgres"
	SourceREST     = "rest"
)

// Config holds all configuration for the server binary.
type Config struct {
	HTTP          HTTPConfig
	Source        SourceConfig
	Database      DatabaseConfig
	Upstream      UpstreamConfig
	Dashboard     DashboardConfig
	Observability ObservabilityConfig

	ShutdownTimeout time.Duration `env:"RENTDESK_SHUTDOWN_TIMEOUT" default:"10s"`
}

// SourceConfig selects where entity lists come from.
type SourceConfig struct {
	Type string `env:"RENTDESK_SOURCE" default:"memory"` // memory, postgres, rest
	// Seed fills the memory source with demo data.
	Seed bool `env:"RENTDESK_SEED" default:"true"`
}

// DashboardConfig holds list page and session settings.
type DashboardConfig struct {
	DefaultPageSize int           `env:"RENTDESK_DEFAULT_PAGE_SIZE" default:"10"`
	PageSizes       []int         `env:"RENTDESK_PAGE_SIZES" default:"10,20,50"`
	SessionTTL      time.Duration `env:"RENTDESK_SESSION_TTL" default:"30m"`
	SweepInterval   time.Duration `env:"RENTDESK_SESSION_SWEEP_INTERVAL" default:"1m"`
}

// ObservabilityConfig holds observability configuration.
type ObservabilityConfig struct {
	OTelEnabled bool   `env:"RENTDESK_OTEL_ENABLED" default:"false"`
	ServiceName string `env:"OTEL_SERVICE_NAME"`
}

// Load parses environment variables into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the selected source has what it needs.
func (c *Config) Validate() error {
	switch c.Source.Type {
	case SourceMemory:
	case SourcePostgres:
		if c.Database.DSN == "" {
			return ErrDSNRequired
		}
	case SourceREST:
		if c.Upstream.BaseURL == "" {
			return ErrBaseURLRequired
		}
	default:
		return fmt.Errorf("unsupported RENTDESK_SOURCE %q: expected memory, postgres or rest", c.Source.Type)
	}
	return nil
}
