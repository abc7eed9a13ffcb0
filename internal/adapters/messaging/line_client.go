// Package messaging implements the outbound chat-platform client
// against the LINE Messaging API.
package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jonaspay/jonaspay-bot/internal/core/domain"
	portssvc "github.com/jonaspay/jonaspay-bot/internal/core/ports/services"
)

const defaultTimeout = 10 * time.Second

// LineClient talks to the LINE Messaging API with a channel access token.
type LineClient struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

var _ portssvc.MessagingClient = (*LineClient)(nil)

// NewLineClient creates a client for the given API base URL
// (https://api.line.me in production, an httptest server in tests).
func NewLineClient(baseURL, accessToken string) *LineClient {
	return &LineClient{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: defaultTimeout},
	}
}

// Reply sends messages bound to a reply token.
func (c *LineClient) Reply(ctx context.Context, replyToken string, messages ...domain.Message) error {
	payload := struct {
		ReplyToken string           `json:"replyToken"`
		Messages   []domain.Message `json:"messages"`
	}{ReplyToken: replyToken, Messages: messages}

	return c.post(ctx, "/v2/bot/message/reply", payload)
}

// Push sends messages directly to a user.
func (c *LineClient) Push(ctx context.Context, userID string, messages ...domain.Message) error {
	payload := struct {
		To       string           `json:"to"`
		Messages []domain.Message `json:"messages"`
	}{To: userID, Messages: messages}

	return c.post(ctx, "/v2/bot/message/push", payload)
}

// GetProfile fetches a user's display profile.
func (c *LineClient) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v2/bot/profile/"+userID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("profile request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var profile domain.Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile response: %w", err)
	}
	return &profile, nil
}

func (c *LineClient) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}
	return nil
}

func apiError(resp *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("messaging API returned %d: %s", resp.StatusCode, string(snippet))
}
