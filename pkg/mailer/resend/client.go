// Package resend provides a mailer.Mailer implementation backed by the Resend
// email API.
package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"plasmodocking/pkg/mailer"
	"plasmodocking/pkg/serrors"
)

// DefaultBaseURL is the public Resend API endpoint.
const DefaultBaseURL = "https://api.resend.com"

// Client talks to the Resend REST API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// ParseRateLimit extracts Resend rate-limit headers. The reset header is the
// number of seconds until the window resets; missing headers yield zeros.
func ParseRateLimit(h http.Header, now time.Time) mailer.RateLimitStatus {
	atoi := func(s string) int {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n
		}

		return 0
	}

	rl := mailer.RateLimitStatus{
		Limit:     atoi(h.Get("Ratelimit-Limit")),
		Remaining: atoi(h.Get("Ratelimit-Remaining")),
	}
	if reset := atoi(h.Get("Ratelimit-Reset")); reset > 0 {
		rl.ResetAt = now.Add(time.Duration(reset) * time.Second)
	}

	return rl
}

// Send delivers msg through POST /emails.
func (c *Client) Send(ctx context.Context, msg mailer.Message) (mailer.SendRes, error) {
	// https://resend.com/docs/api-reference/emails/send-email
	type sendReq struct {
		From    string   `json:"from"`
		To      []string `json:"to"`
		Subject string   `json:"subject"`
		HTML    string   `json:"html,omitempty"`
		Text    string   `json:"text,omitempty"`
	}
	bodyBytes, err := json.Marshal(sendReq{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		return mailer.SendRes{}, fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(bodyBytes))
	if err != nil {
		return mailer.SendRes{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return mailer.SendRes{}, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return mailer.SendRes{}, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		rl := ParseRateLimit(resp.Header, time.Now())

		return mailer.SendRes{}, serrors.With(serrors.ErrRateLimited,
			"rate limited until %s: %s", rl.ResetAt.Format(time.RFC3339), strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return mailer.SendRes{}, serrors.With(serrors.ErrBadGateway,
			"resend returned %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var sendResp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(b, &sendResp); err != nil {
		return mailer.SendRes{}, fmt.Errorf("could not decode response: %w", err)
	}

	return mailer.SendRes{ID: sendResp.ID}, nil
}

// Ensure Client conforms to the mailer.Mailer interface at compile time.
var _ mailer.Mailer = (*Client)(nil)

// New constructs a Client. An empty baseURL selects DefaultBaseURL.
func New(httpClient *http.Client, baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}
