package accounts_test

import (
	"strings"
	"testing"
	"time"

	"plasmodocking/internal/accounts"
	"plasmodocking/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestResetTokens(t *testing.T) {
	tokens := accounts.NewResetTokens("secret")
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	user := &domain.User{
		ID:           domain.UserID(uuid.New()),
		PasswordHash: "argon2$argon2id$v=19$m=65536,t=3,p=2$a$b",
	}

	token := tokens.Make(user, now)
	require.Contains(t, token, "-")

	t.Run("valid", func(t *testing.T) {
		require.True(t, tokens.Check(user, token, now))
		require.True(t, tokens.Check(user, token, now.Add(accounts.ResetTokenTTL)))
	})

	t.Run("expired", func(t *testing.T) {
		require.False(t, tokens.Check(user, token, now.Add(accounts.ResetTokenTTL+time.Second)))
	})

	t.Run("password change invalidates", func(t *testing.T) {
		changed := *user
		changed.PasswordHash = "argon2$argon2id$v=19$m=65536,t=3,p=2$c$d"
		require.False(t, tokens.Check(&changed, token, now))
	})

	t.Run("login invalidates", func(t *testing.T) {
		loggedIn := *user
		loggedIn.LastLogin = now.Add(time.Minute)
		require.False(t, tokens.Check(&loggedIn, token, now))
	})

	t.Run("other secret", func(t *testing.T) {
		require.False(t, accounts.NewResetTokens("other").Check(user, token, now))
	})

	t.Run("malformed", func(t *testing.T) {
		require.False(t, tokens.Check(user, "", now))
		require.False(t, tokens.Check(user, "nodash", now))
		require.False(t, tokens.Check(user, "!!-abc", now))
		ts, _, _ := strings.Cut(token, "-")
		require.False(t, tokens.Check(user, ts+"-deadbeef", now))
		require.False(t, tokens.Check(nil, token, now))
	})
}
