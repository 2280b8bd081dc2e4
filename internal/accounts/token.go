package accounts

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"plasmodocking/pkg/domain"
)

const (
	// ResetTokenTTL is how long a password reset token stays valid.
	ResetTokenTTL = 3 * 24 * time.Hour

	resetTokenSalt = "plasmodocking/accounts/password-reset"
)

// resetEpoch keeps the base36 timestamps short.
var resetEpoch = time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC) //nolint: gochecknoglobals

// ResetTokens issues and verifies stateless password reset tokens of the
// form "<base36 seconds>-<hex HMAC-SHA256>". The MAC covers the user ID,
// password hash and last login, so a token stops working as soon as the
// password changes or the user logs in.
type ResetTokens struct {
	secret []byte
	ttl    time.Duration
}

// NewResetTokens builds a token generator keyed by secret.
func NewResetTokens(secret string) *ResetTokens {
	return &ResetTokens{secret: []byte(secret), ttl: ResetTokenTTL}
}

// Make returns a token for user issued at now.
func (r *ResetTokens) Make(user *domain.User, now time.Time) string {
	ts := int64(now.Sub(resetEpoch) / time.Second)

	return r.make(user, ts)
}

// Check reports whether token is valid for user at now.
func (r *ResetTokens) Check(user *domain.User, token string, now time.Time) bool {
	if user == nil || token == "" {
		return false
	}

	tsPart, _, ok := strings.Cut(token, "-")
	if !ok {
		return false
	}

	ts, err := strconv.ParseInt(tsPart, 36, 64)
	if err != nil || ts < 0 {
		return false
	}

	if !hmac.Equal([]byte(r.make(user, ts)), []byte(token)) {
		return false
	}

	issued := resetEpoch.Add(time.Duration(ts) * time.Second)

	return now.Sub(issued) <= r.ttl
}

func (r *ResetTokens) make(user *domain.User, ts int64) string {
	lastLogin := ""
	if !user.LastLogin.IsZero() {
		lastLogin = user.LastLogin.UTC().Truncate(time.Second).Format(time.RFC3339)
	}

	mac := hmac.New(sha256.New, append([]byte(resetTokenSalt), r.secret...))
	mac.Write([]byte(user.ID.String()))
	mac.Write([]byte(user.PasswordHash))
	mac.Write([]byte(lastLogin))
	mac.Write([]byte(strconv.FormatInt(ts, 10)))

	return strconv.FormatInt(ts, 36) + "-" + hex.EncodeToString(mac.Sum(nil))
}
