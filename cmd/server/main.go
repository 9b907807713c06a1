package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rezkam/rentdesk/internal/application/dashboard"
	"github.com/rezkam/rentdesk/internal/config"
	httpserver "github.com/rezkam/rentdesk/internal/infrastructure/http"
	"github.com/rezkam/rentdesk/internal/infrastructure/http/handler"
	"github.com/rezkam/rentdesk/internal/infrastructure/observability"
	"github.com/rezkam/rentdesk/internal/infrastructure/persistence/postgres"
	"github.com/rezkam/rentdesk/internal/infrastructure/upstream"
)

func main() {
	if err := run(); err != nil {
		// slog may not be configured yet when config fails.
		fmt.Fprintf(os.Stderr, "failed to run: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Root context for normal operation; cancelled on SIGTERM/SIGINT.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	tel, err := observability.Init(ctx, observability.Config{
		Enabled:     cfg.Observability.OTelEnabled,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		return fmt.Errorf("failed to init observability: %w", err)
	}
	defer func() {
		// Bounded so an unreachable collector cannot hang the exit.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "failed to shutdown telemetry", "error", err)
		}
	}()
	slog.SetDefault(tel.Logger)

	slog.InfoContext(ctx, "starting rentdesk", "source", cfg.Source.Type)

	src := sources{kind: cfg.Source.Type, seed: cfg.Source.Seed, now: time.Now().UTC()}
	var health httpserver.HealthCheck

	switch cfg.Source.Type {
	case config.SourcePostgres:
		store, err := postgres.NewStoreWithConfig(ctx, postgres.DBConfig{
			DSN:             cfg.Database.DSN,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
			ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		})
		if err != nil {
			return fmt.Errorf("failed to create store: %w", err)
		}
		defer store.Close()
		src.store = store
		health = store.Ping
		slog.InfoContext(ctx, "storage initialized", "url", maskPassword(cfg.Database.DSN))
	case config.SourceREST:
		client, err := upstream.NewClient(upstream.Config{
			BaseURL:    cfg.Upstream.BaseURL,
			Token:      cfg.Upstream.Token,
			Timeout:    cfg.Upstream.Timeout,
			RateLimit:  cfg.Upstream.RateLimit,
			MaxRetries: cfg.Upstream.MaxRetries,
		})
		if err != nil {
			return fmt.Errorf("failed to create upstream client: %w", err)
		}
		src.client = client
		slog.InfoContext(ctx, "upstream client initialized", "url", cfg.Upstream.BaseURL)
	}

	svc, err := dashboard.NewService(newRegistry(src), dashboard.Config{
		DefaultPageSize: cfg.Dashboard.DefaultPageSize,
		PageSizes:       cfg.Dashboard.PageSizes,
		SessionTTL:      cfg.Dashboard.SessionTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create dashboard service: %w", err)
	}
	go sweepSessions(ctx, svc.Sessions(), cfg.Dashboard.SweepInterval)

	server := httpserver.NewAPIServer(handler.NewListHandler(svc).Routes(), health, httpserver.ServerConfig{
		Host:              cfg.HTTP.Host,
		Port:              cfg.HTTP.Port,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MaxBodyBytes:      cfg.HTTP.MaxBodyBytes,
		SecureCookies:     cfg.HTTP.SecureCookies,
		SessionTTL:        cfg.Dashboard.SessionTTL,
	})

	errResult := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errResult <- fmt.Errorf("failed to serve HTTP: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.InfoContext(ctx, "shutting down")

		// The root context is already cancelled; give in-flight requests
		// a fresh window to drain.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
		slog.InfoContext(shutdownCtx, "HTTP server shutdown complete")
		return nil
	case err := <-errResult:
		return err
	}
}

// sweepSessions evicts idle sessions until ctx is cancelled.
func sweepSessions(ctx context.Context, sessions *dashboard.Sessions, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sessions.Sweep(); n > 0 {
				slog.DebugContext(ctx, "evicted idle sessions", "count", n, "remaining", sessions.Len())
			}
		}
	}
}

// maskPassword masks the password in a connection string for logging.
func maskPassword(connStr string) string {
	u, err := url.Parse(connStr)
	if err != nil {
		// Fall back to full redaction when the DSN is not a URL.
		return "[REDACTED]"
	}
	if u.User != nil {
		if _, hasPassword := u.User.Password(); hasPassword {
			u.User = url.UserPassword(u.User.Username(), "xxxxxx")
		}
	}
	return u.String()
}
