package ebay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	productionBase = "https://api.ebay.com"
	sandboxBase    = "https://api.sandbox.ebay.com"

	userAgent = "pricescan/1.0 (github.com)"
)

// Client is a rate-limited eBay Browse API client with in-memory token caching.
type Client struct {
	http *http.Client
	sem  chan struct{}

	clientID     string
	clientSecret string
	base         string // identity and Browse API share the base URL
	limit        int    // per-request item cap

	// Cached OAuth token. Guarded by mu; concurrent acquisitions are
	// coalesced through tokenGroup so only one exchange is in flight.
	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
	tokenGroup  singleflight.Group
}

// NewClient creates a client for the given credentials and environment
// ("production" or "sandbox"). Empty credentials are allowed; token
// acquisition will fail with a CredentialError and callers are expected
// to fall back to mock data.
func NewClient(clientID, clientSecret, environment string) *Client {
	base := productionBase
	if environment == "sandbox" {
		base = sandboxBase
	}
	return &Client{
		http:         &http.Client{Timeout: 30 * time.Second},
		sem:          make(chan struct{}, 10),
		clientID:     clientID,
		clientSecret: clientSecret,
		base:         base,
		limit:        defaultSearchLimit,
	}
}

// SetSearchLimit overrides the per-request item cap. Values outside
// 1..200 (the Browse API maximum) are ignored.
func (c *Client) SetSearchLimit(n int) {
	if n >= 1 && n <= 200 {
		c.limit = n
	}
}

// HasCredentials reports whether both client credentials are configured.
func (c *Client) HasCredentials() bool {
	return c.clientID != "" && c.clientSecret != ""
}

// HealthCheck pings the Browse API base to verify connectivity.
func (c *Client) HealthCheck(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/buy/browse/v1/item_summary/search?q=ping&limit=1", nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	// Without a token this returns 401, which still proves the endpoint is reachable.
	return resp.StatusCode < 500
}

// getJSON performs an authorized GET against the Browse API and decodes the body.
func (c *Client) getJSON(ctx context.Context, url, marketplaceID, token string, dst interface{}) error {
	c.sem <- struct{}{}
	defer func() { <-c.sem }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-EBAY-C-MARKETPLACE-ID", marketplaceID)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 500))
		return &UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	return json.NewDecoder(resp.Body).Decode(dst)
}

// UpstreamError reports a non-success response from the Browse API.
// Callers degrade to an empty result set rather than failing the request.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("ebay search %d: %s", e.Status, e.Body)
}
