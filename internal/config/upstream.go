package config

import (
	"errors"
	"time"
)

// ErrBaseURLRequired is returned when the rest source has no base URL.
var ErrBaseURLRequired = errors.New("RENTDESK_UPSTREAM_URL is required when RENTDESK_SOURCE is 'rest'")

// UpstreamConfig holds the REST backend client configuration.
type UpstreamConfig struct {
	BaseURL    string        `env:"RENTDESK_UPSTREAM_URL"`
	Token      string        `env:"RENTDESK_UPSTREAM_TOKEN"`
	Timeout    time.Duration `env:"RENTDESK_UPSTREAM_TIMEOUT" default:"10s"`
	RateLimit  int           `env:"RENTDESK_UPSTREAM_RATE_LIMIT" default:"20"` // requests per second
	MaxRetries int           `env:"RENTDESK_UPSTREAM_MAX_RETRIES" default:"3"`
}
