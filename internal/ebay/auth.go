package ebay

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const oauthScope = "https://api.ebay.com/oauth/api_scope"

// tokenExpiryBuffer is how long before expiry a cached token is considered stale.
const tokenExpiryBuffer = 60 * time.Second

// CredentialError indicates missing client credentials. It is returned
// before any network call is attempted.
type CredentialError struct {
	Missing string // "client id", "client secret", or "client id and secret"
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("ebay credentials not configured: missing %s", e.Missing)
}

// AuthServiceError reports a failed token exchange with the identity endpoint.
type AuthServiceError struct {
	Status int
	Body   string // excerpt of the response body, truncated
}

func (e *AuthServiceError) Error() string {
	return fmt.Sprintf("ebay token exchange failed: %d: %s", e.Status, e.Body)
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// AccessToken returns a valid bearer token for the Browse API, performing a
// client-credentials exchange when the cached token is missing or within
// 60s of expiry. Concurrent callers share a single in-flight exchange.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	if err := c.checkCredentials(); err != nil {
		return "", err
	}

	c.mu.Lock()
	if c.token != "" && time.Now().Before(c.tokenExpiry.Add(-tokenExpiryBuffer)) {
		tok := c.token
		c.mu.Unlock()
		return tok, nil
	}
	c.mu.Unlock()

	result, err, _ := c.tokenGroup.Do("token", func() (interface{}, error) {
		return c.exchangeToken(ctx)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (c *Client) checkCredentials() error {
	switch {
	case c.clientID == "" && c.clientSecret == "":
		return &CredentialError{Missing: "client id and secret"}
	case c.clientID == "":
		return &CredentialError{Missing: "client id"}
	case c.clientSecret == "":
		return &CredentialError{Missing: "client secret"}
	}
	return nil
}

// exchangeToken performs the client-credentials grant and caches the result.
func (c *Client) exchangeToken(ctx context.Context) (string, error) {
	body := "grant_type=client_credentials&scope=" + oauthScope
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.base+"/identity/v1/oauth2/token", strings.NewReader(body))
	if err != nil {
		return "", err
	}
	credentials := base64.StdEncoding.EncodeToString([]byte(c.clientID + ":" + c.clientSecret))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Basic "+credentials)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 500))
		return "", &AuthServiceError{Status: resp.StatusCode, Body: string(excerpt)}
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", &AuthServiceError{Status: resp.StatusCode, Body: "empty access_token"}
	}

	c.mu.Lock()
	c.token = tok.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	c.mu.Unlock()

	return tok.AccessToken, nil
}
