package config

import (
	"fmt"

	"github.com/rezkam/rentdesk/internal/env"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	PostgresURL string `env:"RENTDESK_TEST_POSTGRES_URL"`
}

// LoadTestConfig loads test configuration from environment.
func LoadTestConfig() (*TestConfig, error) {
	cfg := &TestConfig{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to load test config: %w", err)
	}

	return cfg, nil
}
