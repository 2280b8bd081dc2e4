package accounts

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	hashAlgorithm = "argon2"
	hashVariant   = "argon2id"

	argonTime    = 3
	argonMemory  = 64 * 1024
	argonThreads = 2
	argonKeyLen  = 32
	argonSaltLen = 16

	// unusablePrefix marks accounts created without a password.
	unusablePrefix = "!"
)

// ErrMalformedHash is returned by CheckPassword for hashes it cannot parse.
var ErrMalformedHash = errors.New("malformed password hash")

var b64 = base64.RawStdEncoding //nolint: gochecknoglobals

// HashPassword hashes password with argon2id and returns the encoded form
// "argon2$argon2id$v=19$m=<mem>,t=<time>,p=<threads>$<salt>$<hash>".
func HashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("could not generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf("%s$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		hashAlgorithm, hashVariant, argon2.Version,
		argonMemory, argonTime, argonThreads,
		b64.EncodeToString(salt), b64.EncodeToString(key)), nil
}

// UnusablePassword returns a hash value that never matches any password.
func UnusablePassword() string {
	b := make([]byte, 20)
	_, _ = rand.Read(b)

	return unusablePrefix + b64.EncodeToString(b)
}

// IsUsablePassword reports whether encoded can ever match a password.
func IsUsablePassword(encoded string) bool {
	return encoded != "" && !strings.HasPrefix(encoded, unusablePrefix)
}

// CheckPassword reports whether password matches the encoded hash.
func CheckPassword(password, encoded string) (bool, error) {
	if !IsUsablePassword(encoded) {
		return false, nil
	}

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != hashAlgorithm || parts[1] != hashVariant {
		return false, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false, ErrMalformedHash
	}

	var (
		memory, iterations uint32
		threads            uint8
	)
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false, ErrMalformedHash
	}

	salt, err := b64.DecodeString(parts[4])
	if err != nil {
		return false, ErrMalformedHash
	}
	want, err := b64.DecodeString(parts[5])
	if err != nil {
		return false, ErrMalformedHash
	}

	got := argon2.IDKey([]byte(password), salt, iterations, memory, threads, uint32(len(want))) //nolint: gosec

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
