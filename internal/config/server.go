package config

import "time"

// HTTPConfig holds HTTP server configuration. Zero values fall back to the
// server's defaults.
type HTTPConfig struct {
	Host              string        `env:"RENTDESK_HTTP_HOST"`
	Port              string        `env:"RENTDESK_HTTP_PORT" default:"8081"`
	ReadTimeout       time.Duration `env:"RENTDESK_HTTP_READ_TIMEOUT"`
	WriteTimeout      time.Duration `env:"RENTDESK_HTTP_WRITE_TIMEOUT"`
	IdleTimeout       time.Duration `env:"RENTDESK_HTTP_IDLE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `env:"RENTDESK_HTTP_READ_HEADER_TIMEOUT"`
	MaxHeaderBytes    int           `env:"RENTDESK_HTTP_MAX_HEADER_BYTES"`
	MaxBodyBytes      int64         `env:"RENTDESK_HTTP_MAX_BODY_BYTES"`
	// SecureCookies marks the session cookie Secure; enable behind TLS.
	SecureCookies bool `env:"RENTDESK_HTTP_SECURE_COOKIES"`
}
