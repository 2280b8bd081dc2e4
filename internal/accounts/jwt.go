package accounts

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"plasmodocking/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSigningKey is returned by Issue when only a public key was configured.
var ErrNoSigningKey = errors.New("no signing key configured")

// JWT signs and verifies RS256 access tokens whose subject is a user ID.
type JWT struct {
	private *rsa.PrivateKey
	public  *rsa.PublicKey
	ttl     time.Duration
}

// NewJWT parses the PEM encoded keys. Either key may be empty: without a
// private key the instance can only verify, without a public key it is
// derived from the private one.
func NewJWT(privatePEM, publicPEM string, ttl time.Duration) (*JWT, error) {
	j := &JWT{ttl: ttl}

	if privatePEM != "" {
		key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privatePEM))
		if err != nil {
			return nil, fmt.Errorf("could not parse RSA private key: %w", err)
		}
		j.private = key
		j.public = &key.PublicKey
	}

	if publicPEM != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicPEM))
		if err != nil {
			return nil, fmt.Errorf("could not parse RSA public key: %w", err)
		}
		j.public = key
	}

	if j.public == nil {
		return nil, errors.New("a JWT public or private key is required")
	}

	return j, nil
}

// Issue signs a token for subject valid from now for the configured TTL.
func (j *JWT) Issue(subject string, now time.Time) (string, error) {
	if j.private == nil {
		return "", ErrNoSigningKey
	}

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(j.private)
	if err != nil {
		return "", fmt.Errorf("could not sign JWT: %w", err)
	}

	return signed, nil
}

// Verify checks the signature and time claims of token and returns its
// subject. Every failure is reported as serrors.ErrUnauthorized.
func (j *JWT) Verify(token string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return j.public, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	if claims.Subject == "" {
		return "", serrors.With(serrors.ErrUnauthorized, "invalid token subject")
	}

	return claims.Subject, nil
}
