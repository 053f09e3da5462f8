package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"reel_fetcher/internal/domain"
)

// Config holds the RapidAPI Instagram scraper settings.
type Config struct {
	Host    string
	APIKey  string
	Timeout time.Duration
}

// Client talks to the Instagram bulk scraper API. Every call is a
// single attempt; pipeline errors are terminal and never retried.
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
		logger: logger.With("source", "instagram"),
	}
}

// FetchReels lists the profile's recent reels as candidate items, in
// the order the provider returns them. A response without the expected
// items field is a domain.ErrValidation, distinct from transport
// failures.
func (c *Client) FetchReels(ctx context.Context, handle string) ([]domain.CandidateItem, error) {
	url := fmt.Sprintf("https://%s/webuser_reels/%s?nocors=false", c.host, handle)

	var resp ReelsResponse
	if err := c.get(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("fetch reels for %q: %w", handle, err)
	}

	if resp.Data == nil || resp.Data.Items == nil {
		return nil, fmt.Errorf("reels response missing items: %w", domain.ErrValidation)
	}

	items := c.transform(resp.Data.Items)
	c.logger.Debug("fetched reels", "handle", handle, "items", len(items))

	return items, nil
}

// ResolveMedia resolves a post code to its direct high-definition media
// URL. A payload without the HD field means there is no usable media
// for the item; the caller treats that as run-fatal.
func (c *Client) ResolveMedia(ctx context.Context, code string) (string, error) {
	url := fmt.Sprintf("https://%s/media_download_by_shortcode/%s", c.host, code)

	var resp MediaResponse
	if err := c.get(ctx, url, &resp); err != nil {
		return "", fmt.Errorf("resolve media %q: %w", code, err)
	}

	if resp.Data == nil || resp.Data.MainMediaHD == "" {
		return "", fmt.Errorf("media %q has no hd url: %w", code, domain.ErrValidation)
	}

	return resp.Data.MainMediaHD, nil
}

// LookupUser resolves a username to its numeric profile id. Used by the
// admin surface when wiring a location to its profile.
func (c *Client) LookupUser(ctx context.Context, username string) (*UserData, error) {
	url := fmt.Sprintf("https://%s/webget_user_id/%s", c.host, username)

	var resp UserResponse
	if err := c.get(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("lookup user %q: %w", username, err)
	}

	if resp.Data == nil || resp.Data.UserID == "" {
		return nil, fmt.Errorf("user response missing id: %w", domain.ErrValidation)
	}

	return resp.Data, nil
}

func (c *Client) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w: %w", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d: %w", resp.StatusCode, domain.ErrNetwork)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w: %w", domain.ErrValidation, err)
	}

	return nil
}

func (c *Client) transform(items []ReelItem) []domain.CandidateItem {
	candidates := make([]domain.CandidateItem, 0, len(items))

	for _, item := range items {
		if item.Media == nil {
			continue
		}

		candidate := domain.CandidateItem{
			Code:      item.Media.Code,
			MediaType: item.Media.MediaType,
		}
		if item.Media.Caption != nil {
			candidate.Caption = item.Media.Caption.Text
		}

		candidates = append(candidates, candidate)
	}

	return candidates
}
