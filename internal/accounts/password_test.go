package accounts_test

import (
	"strings"
	"testing"

	"plasmodocking/internal/accounts"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	encoded, err := accounts.HashPassword("correct horse battery")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(encoded, "argon2$argon2id$v=19$"))

	ok, err := accounts.CheckPassword("correct horse battery", encoded)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = accounts.CheckPassword("wrong", encoded)
	require.NoError(t, err)
	require.False(t, ok)

	other, err := accounts.HashPassword("correct horse battery")
	require.NoError(t, err)
	require.NotEqual(t, encoded, other, "salts must differ")
}

func TestCheckPassword_Unusable(t *testing.T) {
	unusable := accounts.UnusablePassword()
	require.False(t, accounts.IsUsablePassword(unusable))
	require.False(t, accounts.IsUsablePassword(""))

	ok, err := accounts.CheckPassword("", unusable)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCheckPassword_Malformed(t *testing.T) {
	for _, encoded := range []string{
		"pbkdf2_sha256$1000$salt$hash",
		"argon2$argon2id$v=19$m=x$salt$hash",
		"argon2$argon2id$v=18$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"argon2$argon2id$v=19$m=65536,t=3,p=2$***$aGFzaA",
	} {
		_, err := accounts.CheckPassword("x", encoded)
		require.ErrorIs(t, err, accounts.ErrMalformedHash, encoded)
	}
}
