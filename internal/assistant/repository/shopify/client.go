package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"
)

// Client is the HTTP wrapper for the Shopify Admin REST API.
type Client struct {
	baseURL     string // https://<store>/admin/api/<version>
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a new Shopify Admin API client.
func NewClient(storeURL, accessToken, apiVersion string) *Client {
	return &Client{
		baseURL:     fmt.Sprintf("https://%s/admin/api/%s", storeURL, apiVersion),
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

// newClientWithBaseURL is used by tests to point at a httptest server.
func newClientWithBaseURL(baseURL, accessToken string) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

// get performs one GET against the Admin API and decodes the JSON body into
// out. It returns the Link header so callers can follow pagination.
func (c *Client) get(ctx context.Context, url string, out any) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("shopify: failed to build request: %w", err)
	}
	httpReq.Header.Set("X-Shopify-Access-Token", c.accessToken)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("shopify: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("shopify: API error %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return "", fmt.Errorf("shopify: failed to decode response: %w", err)
	}
	return resp.Header.Get("Link"), nil
}

var linkNextRe = regexp.MustCompile(`<([^>]+)>;\s*rel="next"`)

// nextPageURL extracts the rel="next" URL from a Link header; empty when
// there are no more pages.
func nextPageURL(linkHeader string) string {
	m := linkNextRe.FindStringSubmatch(linkHeader)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}
