// Package client fetches dashboard resources from the signal API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"signal-dashboard/models"
)

const (
	StatsPath    = "/api/stats"
	ClustersPath = "/api/clusters"
	DataPath     = "/api/data"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// New returns a client for the API rooted at baseURL. The default HTTP
// client has no timeout; requests end when their context does.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) FetchStats(ctx context.Context) (models.StatsSummary, error) {
	var stats models.StatsSummary
	if err := c.getJSON(ctx, StatsPath, &stats); err != nil {
		return models.StatsSummary{}, err
	}
	return stats, nil
}

func (c *Client) FetchClusters(ctx context.Context) (*models.ClusterCounts, error) {
	counts := models.NewClusterCounts()
	if err := c.getJSON(ctx, ClustersPath, counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (c *Client) FetchData(ctx context.Context) ([]models.Signal, error) {
	var signals []models.Signal
	if err := c.getJSON(ctx, DataPath, &signals); err != nil {
		return nil, err
	}
	return signals, nil
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("fetch %s: unexpected status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
