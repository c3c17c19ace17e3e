// Package catalog reads the product catalog from the remote menu
// endpoint. It never retries and never caches; a failed fetch is
// terminal for that page-load attempt.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/balcao-cafe/balcao/internal/model"
)

// StatusError is a non-2xx catalog response, carrying the status code
// and status text for the caller to report.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog request failed: %d - %s", e.Code, e.Status)
}

// Client fetches products from one endpoint.
type Client struct {
	endpoint string
	hc       *http.Client
}

// NewClient returns a client for endpoint. A nil hc falls back to
// http.DefaultClient.
func NewClient(endpoint string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{endpoint: endpoint, hc: hc}
}

// Fetch returns the full product sequence, or a transport/parse error.
func (c *Client) Fetch(ctx context.Context) ([]model.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	var products []model.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return products, nil
}
