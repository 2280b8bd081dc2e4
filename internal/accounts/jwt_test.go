package accounts_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"plasmodocking/internal/accounts"
	"plasmodocking/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// helper to generate an RSA key pair and return PEM-encoded private and public keys.
func genRSAKeys(tb testing.TB) (*rsa.PrivateKey, string, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err, "failed to generate RSA key")
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err, "failed to marshal public key")
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})

	return priv, string(privPEM), string(pubPEM)
}

func signJWTRS256(tb testing.TB, priv *rsa.PrivateKey, sub string, issuedAt time.Time, exp time.Time) string {
	tb.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(exp),
		NotBefore: jwt.NewNumericDate(issuedAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(priv)
	require.NoError(tb, err, "failed to sign token")

	return signed
}

func TestJWT_IssueAndVerify(t *testing.T) {
	_, privPEM, _ := genRSAKeys(t)
	j, err := accounts.NewJWT(privPEM, "", 90*24*time.Hour)
	require.NoError(t, err)

	sub := uuid.NewString()
	token, err := j.Issue(sub, time.Now())
	require.NoError(t, err)

	got, err := j.Verify(token)
	require.NoError(t, err)
	require.Equal(t, sub, got)
}

func TestJWT_VerifyOnly(t *testing.T) {
	priv, _, pubPEM := genRSAKeys(t)
	j, err := accounts.NewJWT("", pubPEM, time.Hour)
	require.NoError(t, err)

	_, err = j.Issue("x", time.Now())
	require.ErrorIs(t, err, accounts.ErrNoSigningKey)

	now := time.Now()
	got, err := j.Verify(signJWTRS256(t, priv, "abc", now, now.Add(time.Hour)))
	require.NoError(t, err)
	require.Equal(t, "abc", got)
}

func TestJWT_NoKeys(t *testing.T) {
	_, err := accounts.NewJWT("", "", time.Hour)
	require.Error(t, err)

	_, err = accounts.NewJWT("not a pem", "", time.Hour)
	require.Error(t, err)
}

func TestJWT_Verify_Rejects(t *testing.T) {
	priv, _, pubPEM := genRSAKeys(t)
	j, err := accounts.NewJWT("", pubPEM, time.Hour)
	require.NoError(t, err)

	now := time.Now()
	privOther, _, _ := genRSAKeys(t)

	hs := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	hsSigned, err := hs.SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := map[string]string{
		"invalid signature": signJWTRS256(t, privOther, uuid.NewString(), now, now.Add(time.Hour)),
		"expired":           signJWTRS256(t, priv, uuid.NewString(), now.Add(-2*time.Hour), now.Add(-time.Hour)),
		"empty subject":     signJWTRS256(t, priv, "", now, now.Add(time.Hour)),
		"wrong algorithm":   hsSigned,
		"garbage":           "not.a.token",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := j.Verify(token)
			require.ErrorIs(t, err, serrors.ErrUnauthorized)
		})
	}
}
