package expopush

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultEndpoint is the Expo push delivery HTTP endpoint.
const DefaultEndpoint = "https://exp.host/--/api/v2/push/send"

// Client is a minimal HTTP client for the Expo push delivery service.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// NewClient constructs a push client. An empty endpoint falls back to the
// Expo default.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		endpoint:   endpoint,
	}
}

// Send forwards one push message and decodes the delivery ticket. Delivery is
// best-effort; callers log failures and move on.
func (c *Client) Send(ctx context.Context, msg *Message) (*Ticket, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal push message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip, deflate")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("push request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Warn().
			Int("status", resp.StatusCode).
			Str("response", string(respBody)).
			Msg("Push delivery endpoint returned non-200")
		return nil, fmt.Errorf("push delivery failed with status %d", resp.StatusCode)
	}

	var wrapper ticketWrapper
	if err := json.Unmarshal(respBody, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to decode push response: %w", err)
	}
	return &wrapper.Data, nil
}
