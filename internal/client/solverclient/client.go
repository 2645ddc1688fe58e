// Package solverclient fetches raw solution documents from the external
// solver gateway. This is the only network boundary of the analysis service;
// retries, if any, belong to the gateway itself.
package solverclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/shiftsight/shiftsight-api/pkg/config"
)

// Client talks to the solver gateway over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// New constructs a solver client from config.
func New(cfg config.SolverConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// FetchSolution retrieves the raw solution document for a schedule id. The
// body is returned verbatim; decoding stays with the analysis engine.
func (c *Client) FetchSolution(ctx context.Context, scheduleID string) ([]byte, error) {
	if scheduleID == "" {
		return nil, fmt.Errorf("schedule id required")
	}

	endpoint := fmt.Sprintf("%s/schedules/%s/solution", c.baseURL, url.PathEscape(scheduleID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build solver request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch solution %s: %w", scheduleID, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch solution %s: solver returned %d", scheduleID, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read solution %s: %w", scheduleID, err)
	}

	c.logger.Debug("solution fetched",
		zap.String("schedule_id", scheduleID),
		zap.Int("bytes", len(body)),
		zap.Duration("latency", time.Since(start)),
	)

	return body, nil
}
