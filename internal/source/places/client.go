package places

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"reel_fetcher/internal/domain"
)

// Config holds the RapidAPI Google Places settings.
type Config struct {
	Host    string
	APIKey  string
	Timeout time.Duration
}

// Client proxies free-text place searches for the admin UI. Responses
// pass through unmodified; this service adds nothing to them.
type Client struct {
	httpClient *http.Client
	host       string
	apiKey     string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		host:   cfg.Host,
		apiKey: cfg.APIKey,
		logger: logger.With("source", "places"),
	}
}

func (c *Client) TextSearch(ctx context.Context, query string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("radius", "1000")
	params.Set("language", "en")
	params.Set("region", "en")

	searchURL := fmt.Sprintf("https://%s/maps/api/place/textsearch/json?%s", c.host, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w: %w", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %w", resp.StatusCode, domain.ErrNetwork)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode response: %w: %w", domain.ErrValidation, err)
	}

	c.logger.Debug("searched places", "query", query)

	return raw, nil
}
