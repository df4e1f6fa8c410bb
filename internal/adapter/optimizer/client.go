// Package optimizer provides a client for a remote image-optimization
// service. Calls are issued fire-and-forget by the service layer; the core
// always returns its own locally-rendered bytes.
package optimizer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client posts PNG bytes to the optimization endpoint.
type Client struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new optimizer client.
func NewClient(url, apiKey string, timeout time.Duration) *Client {
	return &Client{
		url:    url,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Optimize submits image bytes and returns the optimized bytes. A single
// failed attempt is final; the caller does not retry.
func (c *Client) Optimize(ctx context.Context, data []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "image/png")
	req.SetBasicAuth("api", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("optimizer API error [%d]: %s", resp.StatusCode, string(body))
	}

	// Some services return the optimized image under a Location header
	// instead of inline; follow it once.
	if loc := resp.Header.Get("Location"); loc != "" {
		return c.fetch(ctx, loc)
	}

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return out, nil
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth("api", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch optimized image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("optimizer API error [%d]: %s", resp.StatusCode, string(body))
	}
	return io.ReadAll(resp.Body)
}
