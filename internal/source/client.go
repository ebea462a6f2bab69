// Package source fetches activity records from the backend's read endpoint.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"bullsharks/internal/activity"
)

// DefaultPath is the backend endpoint listing every stored activity.
const DefaultPath = "/api/read"

// Client reads activities from one backend. It performs exactly one request
// per FetchActivities call; there is no retry and no pagination.
type Client struct {
	baseURL    string
	path       string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures the Client during construction.
type Option func(*clientConfig) error

type clientConfig struct {
	httpClient *http.Client
	logger     *slog.Logger
	timeout    time.Duration
	path       string
}

// New creates a Client for the backend at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("source: baseURL is required")
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	cfg := &clientConfig{path: DefaultPath}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	httpClient := &http.Client{}
	if cfg.httpClient != nil {
		// The caller's client is never mutated.
		c := *cfg.httpClient
		httpClient = &c
	}
	if cfg.timeout > 0 {
		httpClient.Timeout = cfg.timeout
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		baseURL:    baseURL,
		path:       cfg.path,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *clientConfig) error {
		cfg.httpClient = c
		return nil
	}
}

// WithLogger configures structured logging.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *clientConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithTimeout sets a timeout on the HTTP client. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) error {
		if d < 0 {
			return fmt.Errorf("source: negative timeout %s", d)
		}
		cfg.timeout = d
		return nil
	}
}

// WithPath overrides the endpoint path (default /api/read).
func WithPath(p string) Option {
	return func(cfg *clientConfig) error {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("source: path %q must start with /", p)
		}
		cfg.path = p
		return nil
	}
}

// URL returns the endpoint the client reads from.
func (c *Client) URL() string { return c.baseURL + c.path }

// FetchActivities issues one GET against the read endpoint and returns the
// decoded records unchanged. Every failure is a *FetchError.
func (c *Client) FetchActivities(ctx context.Context) ([]activity.Activity, error) {
	u := c.URL()
	c.logger.DebugContext(ctx, "fetching activities", "url", u)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, causeError("create request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "fetch activities failed", "url", u, "error", err)
		return nil, causeError("do request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		fe := statusError(resp.StatusCode, statusText(resp))
		c.logger.WarnContext(ctx, "fetch activities failed", "url", u, "status", resp.StatusCode)
		return nil, fe
	}

	var activities []activity.Activity
	if err := json.NewDecoder(resp.Body).Decode(&activities); err != nil {
		c.logger.WarnContext(ctx, "fetch activities failed", "url", u, "error", err)
		return nil, causeError("decode response", err)
	}
	c.logger.DebugContext(ctx, "fetched activities", "count", len(activities))
	return activities, nil
}

// statusText returns the reason phrase of the response, e.g. "Internal
// Server Error" for "500 Internal Server Error".
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	if text == "" {
		text = "HTTP " + strconv.Itoa(resp.StatusCode)
	}
	return text
}
