// Package scout is an HTTP client for the aiScout platform REST API.
// One method per remote operation; sessions are passed explicitly as
// bearer tokens rather than held in shared state.
package scout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aiscout/scoutctl/internal/model"
)

const (
	stageBaseURL = "http://stage.aiscout.io"
	prodBaseURL  = "https://secure.aiscout.io"
)

// MetricsRecorder receives one observation per outbound API call.
type MetricsRecorder interface {
	RecordRequest(op, method string, status int, elapsed time.Duration)
}

// Client is an HTTP client for the platform API
type Client struct {
	env        model.Environment
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    MetricsRecorder
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithBaseURL overrides the environment base URL. Used by tests and
// when routing through a proxy.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

// WithLogger sets the logger used for request diagnostics
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithMetrics attaches a metrics recorder to the client
func WithMetrics(m MetricsRecorder) Option {
	return func(c *Client) { c.metrics = m }
}

// NewClient creates a client for the given environment. The environment
// is validated before anything else; an invalid selector fails here,
// before any request can be issued.
func NewClient(env string, opts ...Option) (*Client, error) {
	parsed, err := model.ParseEnvironment(env)
	if err != nil {
		return nil, err
	}

	c := &Client{
		env:    parsed,
		logger: slog.Default(),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	switch parsed {
	case model.EnvStage:
		c.baseURL = stageBaseURL
	case model.EnvProd:
		c.baseURL = prodBaseURL
	}

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Env returns the environment the client was built for
func (c *Client) Env() model.Environment {
	return c.env
}

// APIError is a non-2xx response from the API. Message and Codes are
// extracted from the JSON error body when it is parseable; otherwise
// they are left empty.
type APIError struct {
	StatusCode int
	Message    string `json:"message"`
	Codes      []int  `json:"codes"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d: %s %v", e.StatusCode, e.Message, e.Codes)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// do performs a request against the client's base URL and decodes the
// response into result when it is non-nil. Non-2xx responses become an
// *APIError; there are no retries.
func (c *Client) do(ctx context.Context, op, method, path, token string, query url.Values, body, result any) error {
	respBody, err := c.doRaw(ctx, op, method, path, token, query, body)
	if err != nil {
		return err
	}
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("%s: failed to parse response: %w", op, err)
		}
	}
	return nil
}

// doRaw is do without response decoding; it returns the raw body so
// callers can keep responses whose shape is not fully known.
func (c *Client) doRaw(ctx context.Context, op, method, path, token string, query url.Values, body any) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to marshal request: %w", op, err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(op, method, 0, time.Since(start))
		return nil, fmt.Errorf("%s: request failed: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	c.record(op, method, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		// Best effort; the body may not be JSON at all
		_ = json.Unmarshal(respBody, apiErr)
		c.logger.Error("api request failed",
			slog.String("op", op),
			slog.Int("status", resp.StatusCode),
			slog.String("message", apiErr.Message),
			slog.Any("codes", apiErr.Codes),
		)
		return nil, apiErr
	}

	return respBody, nil
}

func (c *Client) record(op, method string, status int, elapsed time.Duration) {
	if c.metrics != nil {
		c.metrics.RecordRequest(op, method, status, elapsed)
	}
}
