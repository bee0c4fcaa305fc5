package fastbound

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrBoundBookNotReady is returned when the account's bound book has not been
// generated yet (the API answers 204). Try again the next day.
var ErrBoundBookNotReady = errors.New("bound book is not ready")

// RequestBoundBook asks FastBound to hand out a download URL for the
// account's compliant A&D bound book. auditUser must be the email address of
// a valid FastBound user; it is recorded in the account's audit log.
func (c *Client) RequestBoundBook(ctx context.Context, auditUser string) (string, error) {
	if auditUser == "" {
		return "", fmt.Errorf("audit user is required")
	}

	url := fmt.Sprintf("%s/%s/api/Downloads/BoundBook", c.baseURL, c.account)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build bound book request: %w", err)
	}
	httpReq.SetBasicAuth(c.account, c.apiKey)
	httpReq.Header.Set("X-AuditUser", auditUser)
	httpReq.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to call bound book API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return "", ErrBoundBookNotReady
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("bound book API error %d: %s", resp.StatusCode, string(raw))
	}

	var dl struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&dl); err != nil {
		return "", fmt.Errorf("failed to decode bound book response: %w", err)
	}
	if dl.URL == "" {
		return "", fmt.Errorf("bound book response did not contain a download url")
	}

	return dl.URL, nil
}

// FetchDocument downloads the document behind a URL previously handed out by
// RequestBoundBook.
func (c *Client) FetchDocument(ctx context.Context, url string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build document request: %w", err)
	}
	httpReq.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("document download error %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read document body: %w", err)
	}
	return raw, nil
}
