package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultURL is the crawler endpoint the dashboard reads by default.
	DefaultURL     = "http://localhost:3000/crawling3"
	defaultTimeout = 30 * time.Second
	maxBodyBytes   = 32 << 20
)

// StatusError is returned when the feed answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("feed %s returned status %d", e.URL, e.StatusCode)
}

// Client performs the single GET that retrieves the draw feed.
type Client struct {
	httpClient *http.Client
	url        string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// NewClient returns a client for url, or DefaultURL when url is empty.
func NewClient(url string, opts ...Option) *Client {
	if url == "" {
		url = DefaultURL
	}
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		url:        url,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the endpoint the client reads.
func (c *Client) URL() string { return c.url }

// Fetch retrieves the ordered draw records. There is no retry.
func (c *Client) Fetch(ctx context.Context) ([]Draw, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	slog.Debug("feed response", "url", c.url, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: c.url}
	}

	var draws []Draw
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&draws); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}
	return draws, nil
}

// Fetcher is anything that can produce the draw feed.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Draw, error)
}

// Load is the fail-silent boundary around a fetch: errors are logged and an
// empty feed is returned together with the error, so callers that only want
// the data can ignore it.
func Load(ctx context.Context, f Fetcher) ([]Draw, error) {
	draws, err := f.Fetch(ctx)
	if err != nil {
		slog.Error("failed to load draw feed", "error", err)
		return nil, err
	}
	slog.Info("loaded draw feed", "draws", len(draws))
	return draws, nil
}
