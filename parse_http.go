package tpp

import (
	"context"
	"fmt"
	"net/http"
)

// ParseURL fetches presentation source over HTTP(S) and parses it. A nil
// client uses http.DefaultClient.
func ParseURL(ctx context.Context, client *http.Client, rawURL string, opts ...ParseOption) (*Document, error) {
	if rawURL == "" {
		return nil, fmt.Errorf("parse url: URL is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("parse url: build request: %w", err)
	}
	if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
		return nil, fmt.Errorf("parse url: unsupported scheme %q", req.URL.Scheme)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("parse url: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("parse url: status %s", resp.Status)
	}
	return Parse(resp.Body, opts...)
}
