// Package upstream reads and writes entity collections through a remote REST
// backend.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"

	"github.com/rezkam/rentdesk/internal/domain"
)

// Default client settings.
const (
	DefaultTimeout    = 10 * time.Second
	DefaultRateLimit  = 20
	DefaultMaxRetries = 3
	DefaultBaseDelay  = 100 * time.Millisecond
)

// maxErrorBody bounds how much of an error response is kept for logs.
const maxErrorBody = 512

// Config holds configuration for the Client.
type Config struct {
	BaseURL    string
	Token      string        // sent as a bearer token when set
	Timeout    time.Duration // per attempt
	RateLimit  int           // requests per second
	MaxRetries int           // retries for idempotent requests
	BaseDelay  time.Duration // first retry delay, doubled on each attempt

	// Transport overrides the base transport wrapped by otelhttp.
	Transport http.RoundTripper
}

func (c *Config) applyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.RateLimit <= 0 {
		c.RateLimit = DefaultRateLimit
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.BaseDelay <= 0 {
		c.BaseDelay = DefaultBaseDelay
	}
	if c.Transport == nil {
		c.Transport = http.DefaultTransport
	}
}

// Client sends rate-limited, traced JSON requests to the backend.
type Client struct {
	base       *url.URL
	token      string
	http       *http.Client
	limiter    *rate.Limiter
	maxRetries uint64
	baseDelay  time.Duration
}

// NewClient creates a Client. Applies defaults for zero or invalid config values.
func NewClient(cfg Config) (*Client, error) {
	cfg.applyDefaults()

	base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid upstream base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid upstream base URL %q: scheme must be http or https", cfg.BaseURL)
	}

	return &Client{
		base:  base,
		token: cfg.Token,
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(cfg.Transport),
		},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimit),
		maxRetries: uint64(cfg.MaxRetries),
		baseDelay:  cfg.BaseDelay,
	}, nil
}

// statusError is a non-2xx response.
type statusError struct {
	method string
	path   string
	code   int
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s %s returned %d: %s", e.method, e.path, e.code, e.body)
}

// do sends one logical request, retrying idempotent methods on transport
// errors and 5xx responses. in is encoded as the JSON body when non-nil;
// out receives the decoded response when non-nil.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var payload []byte
	if in != nil {
		var err error
		if payload, err = json.Marshal(in); err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
	}

	var retries uint64
	if idempotent(method) {
		retries = c.maxRetries
	}
	backoff := retry.WithMaxRetries(retries, retry.WithJitterPercent(20, retry.NewExponential(c.baseDelay)))

	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := c.send(ctx, method, path, payload, out)

		var se *statusError
		switch {
		case err == nil:
			return nil
		case errors.As(err, &se) && se.code < http.StatusInternalServerError:
			return err
		case errors.Is(err, errDecode):
			// Malformed bodies are permanent.
			return err
		case ctx.Err() != nil:
			return err
		}

		slog.WarnContext(ctx, "upstream request failed",
			"method", method,
			"path", path,
			"attempt", attempt,
			"error", err)
		return retry.RetryableError(err)
	})
	if err != nil {
		return mapError(method, path, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.DebugContext(ctx, "failed to close upstream response body", "error", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &statusError{method: method, path: path, code: resp.StatusCode, body: strings.TrimSpace(string(snippet))}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w: %s %s: %w", domain.ErrUpstream, errDecode, method, path, err)
	}
	return nil
}

var errDecode = errors.New("failed to decode response")

func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodPut, http.MethodDelete:
		return true
	}
	return false
}

// mapError translates response codes into domain errors.
func mapError(method, path string, err error) error {
	var se *statusError
	if !errors.As(err, &se) {
		if errors.Is(err, domain.ErrUpstream) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("%w: %s %s: %w", domain.ErrUpstream, method, path, err)
	}

	switch se.code {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", domain.ErrNotFound, se)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %w", domain.ErrInvalidPayload, se)
	case http.StatusConflict:
		return fmt.Errorf("%w: %w", domain.ErrInvalidID, se)
	default:
		return fmt.Errorf("%w: %w", domain.ErrUpstream, se)
	}
}
