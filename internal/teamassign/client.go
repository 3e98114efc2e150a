// Package teamassign is a client for the control-centre team-assignment
// service. It is configured independently of the main API client and
// speaks the service's JSON batch envelope.
package teamassign

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aiscout/scoutctl/internal/model"
)

const (
	stageBaseURL = "https://stage.controlcentre.ai.io/api/trpc"
	prodBaseURL  = "https://controlcentre.ai.io/api/trpc"
)

// Client is an HTTP client for the team-assignment service
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL overrides the environment base URL
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithLogger sets the logger used for request diagnostics
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a client for the given environment, validating the
// selector before any network call.
func New(env string, opts ...Option) (*Client, error) {
	parsed, err := model.ParseEnvironment(env)
	if err != nil {
		return nil, err
	}

	c := &Client{
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

type assignment struct {
	AcademyTeamID int64 `json:"academyTeamId"`
	PlayerID      int64 `json:"playerId"`
}

type batchItem struct {
	JSON assignment `json:"json"`
}

// AddAcademyTeamToPlayer assigns a registered player to an academy team.
// The call is unauthenticated aside from the content type. Failures are
// returned to the caller; whether to treat the step as best-effort is the
// caller's decision, not this client's.
func (c *Client) AddAcademyTeamToPlayer(ctx context.Context, academyTeamID, playerID int64) (json.RawMessage, error) {
	// Single-element batch envelope keyed by call index
	payload := map[string]batchItem{
		"0": {JSON: assignment{AcademyTeamID: academyTeamID, PlayerID: playerID}},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("add_academy_team: failed to marshal request: %w", err)
	}

	u := c.baseURL + "/academyAnalysis.addAcademyTeamToPlayer?batch=1"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("add_academy_team: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("add_academy_team: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("add_academy_team: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("team assignment request failed",
			slog.Int("status", resp.StatusCode),
			slog.Int64("academy_team_id", academyTeamID),
			slog.Int64("player_id", playerID),
		)
		return nil, fmt.Errorf("add_academy_team: HTTP %d", resp.StatusCode)
	}

	return respBody, nil
}
