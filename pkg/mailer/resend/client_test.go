package resend_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"plasmodocking/pkg/mailer"
	"plasmodocking/pkg/mailer/resend"
	"plasmodocking/pkg/serrors"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *resend.Client {
	return resend.New(&http.Client{Transport: fn}, "", "re_test")
}

func testMessage() mailer.Message {
	return mailer.Message{
		From:    "PlasmoDocking <noreply@plasmodocking.dev>",
		To:      []string{"alice@example.com"},
		Subject: "Password recovery",
		HTML:    "<p>token</p>",
	}
}

func TestParseRateLimit(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	h := http.Header{}
	h.Set("Ratelimit-Limit", "2")
	h.Set("Ratelimit-Remaining", "0")
	h.Set("Ratelimit-Reset", "7")

	rl := resend.ParseRateLimit(h, now)
	require.Equal(t, 2, rl.Limit)
	require.Equal(t, 0, rl.Remaining)
	require.True(t, rl.ResetAt.Equal(now.Add(7*time.Second)))

	require.True(t, resend.ParseRateLimit(http.Header{}, now).ResetAt.IsZero())
}

func TestClient_Send_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "api.resend.com", r.URL.Host)
		require.Equal(t, "/emails", r.URL.Path)
		require.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "Password recovery", body["subject"])
		require.Equal(t, []any{"alice@example.com"}, body["to"])
		require.NotContains(t, body, "text")

		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader(`{"id":"49a3999c"}`)),
		}, nil
	})

	res, err := c.Send(context.Background(), testMessage())
	require.NoError(t, err)
	require.Equal(t, "49a3999c", res.ID)
}

func TestClient_Send_rateLimited(t *testing.T) {
	c := newTestClient(func(_ *http.Request) (*http.Response, error) {
		h := http.Header{}
		h.Set("Ratelimit-Reset", "1")

		return &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Header:     h,
			Body:       io.NopCloser(strings.NewReader(`{"message":"Too many requests"}`)),
		}, nil
	})

	_, err := c.Send(context.Background(), testMessage())
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestClient_Send_providerError(t *testing.T) {
	c := newTestClient(func(_ *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusUnprocessableEntity,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader(`{"message":"Invalid from"}`)),
		}, nil
	})

	_, err := c.Send(context.Background(), testMessage())
	require.ErrorIs(t, err, serrors.ErrBadGateway)
	require.Contains(t, err.Error(), "Invalid from")
}

func TestClient_Send_transportError(t *testing.T) {
	c := newTestClient(func(_ *http.Request) (*http.Response, error) {
		return nil, errors.New("dial tcp: connection refused")
	})

	_, err := c.Send(context.Background(), testMessage())
	require.Error(t, err)
	require.NotErrorIs(t, err, serrors.ErrBadGateway)
}

func TestClient_Send_badJSON(t *testing.T) {
	c := newTestClient(func(_ *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader(`not-json`)),
		}, nil
	})

	_, err := c.Send(context.Background(), testMessage())
	require.Error(t, err)
}
