package fastbound

import (
	"fmt"
	"net/http"
)

const (
	// DefaultBaseURL is the FastBound cloud endpoint.
	DefaultBaseURL = "https://cloud.fastbound.com"

	// DefaultUserAgent identifies this integration on every request.
	DefaultUserAgent = "fastbound-gateway"

	// apiKeyLength is the length of a well-formed FastBound API key.
	apiKeyLength = 43
)

// Client is the FastBound HTTP API client. Authentication is HTTP Basic with
// the account name as username and the API key as password.
type Client struct {
	baseURL    string
	account    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
}

// New creates a new FastBound client for the given account and API key.
func New(account, apiKey string) (*Client, error) {
	if account == "" {
		return nil, fmt.Errorf("fastbound account is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("fastbound API key is required")
	}

	return &Client{
		baseURL:    DefaultBaseURL,
		account:    account,
		apiKey:     apiKey,
		userAgent:  DefaultUserAgent,
		httpClient: &http.Client{},
	}, nil
}

// WithBaseURL overrides the default FastBound base URL.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// WithHTTPClient overrides the underlying HTTP client (e.g. to set timeouts).
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.httpClient = httpClient
	return c
}

// WithUserAgent overrides the User-Agent header value.
func (c *Client) WithUserAgent(userAgent string) *Client {
	c.userAgent = userAgent
	return c
}

// APIKeyLooksValid reports whether key has the expected length. A short key
// usually means only part of it was copied; callers should warn, not fail.
func APIKeyLooksValid(key string) bool {
	return len(key) == apiKeyLength
}
