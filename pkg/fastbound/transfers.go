package fastbound

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// SubmitTransfer serializes payload and pushes it via POST /api/transfers.
// A nil Items slice is sent as an empty array, never null.
func (c *Client) SubmitTransfer(ctx context.Context, payload TransferPayload) (*SubmitResult, error) {
	if payload.Items == nil {
		payload.Items = []Item{}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transfer payload: %w", err)
	}

	return c.SubmitTransferJSON(ctx, body)
}

// SubmitTransferJSON pushes a pre-serialized transfer payload verbatim.
// The returned SubmitResult carries the HTTP status and response body for
// every completed exchange, success or not; only transport-level failures
// surface as errors.
func (c *Client) SubmitTransferJSON(ctx context.Context, body []byte) (*SubmitResult, error) {
	url := fmt.Sprintf("%s/api/transfers", c.baseURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build transfer request: %w", err)
	}
	httpReq.SetBasicAuth(c.account, c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call transfers API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read transfers response: %w", err)
	}

	return &SubmitResult{
		StatusCode: resp.StatusCode,
		Body:       string(raw),
	}, nil
}
