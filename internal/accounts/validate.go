package accounts

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"plasmodocking/pkg/domain"
)

const (
	// MinPasswordLength is the minimum accepted password length in runes.
	MinPasswordLength = 8
	// MaxSimilarity is the similarity ratio at which a password is rejected
	// for resembling a user attribute.
	MaxSimilarity = 0.7
)

//go:embed common-passwords.txt
var commonPasswordsFile []byte

var (
	commonPasswords = loadCommonPasswords(commonPasswordsFile) //nolint: gochecknoglobals
	nonWord         = regexp.MustCompile(`\W+`)
)

func loadCommonPasswords(b []byte) map[string]struct{} {
	out := make(map[string]struct{})
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		if line := strings.ToLower(strings.TrimSpace(sc.Text())); line != "" {
			out[line] = struct{}{}
		}
	}

	return out
}

// ValidatePassword checks password against the password policy and returns
// one message per violated rule. user may be nil, in which case the
// similarity rule is skipped.
func ValidatePassword(password string, user *domain.User) []string {
	var problems []string

	if user != nil {
		if msg := checkSimilarity(password, user); msg != "" {
			problems = append(problems, msg)
		}
	}

	if len([]rune(password)) < MinPasswordLength {
		problems = append(problems, fmt.Sprintf(
			"This password is too short. It must contain at least %d characters.", MinPasswordLength))
	}

	if _, ok := commonPasswords[strings.ToLower(strings.TrimSpace(password))]; ok {
		problems = append(problems, "This password is too common.")
	}

	if password != "" && strings.IndexFunc(password, func(r rune) bool { return !unicode.IsDigit(r) }) == -1 {
		problems = append(problems, "This password is entirely numeric.")
	}

	return problems
}

func checkSimilarity(password string, user *domain.User) string {
	attributes := []struct {
		value string
		name  string
	}{
		{user.Username, "username"},
		{user.FirstName, "first name"},
		{user.LastName, "last name"},
		{user.Email, "email address"},
	}

	password = strings.ToLower(password)
	for _, attr := range attributes {
		if attr.value == "" {
			continue
		}

		value := strings.ToLower(attr.value)
		parts := append(nonWord.Split(value, -1), value)
		for _, part := range parts {
			if exceedsLengthRatio(password, part) {
				continue
			}
			if quickRatio(password, part) >= MaxSimilarity {
				return fmt.Sprintf("The password is too similar to the %s.", attr.name)
			}
		}
	}

	return ""
}

// exceedsLengthRatio reports whether password is so much longer than value
// that they cannot be similar enough to matter.
func exceedsLengthRatio(password, value string) bool {
	pwdLen := float64(len([]rune(password)))
	valueLen := float64(len([]rune(value)))

	return pwdLen >= 10*valueLen && valueLen < MaxSimilarity/2*pwdLen
}

// quickRatio is an upper bound on the similarity of a and b: twice the size
// of the intersection of their rune multisets divided by their total length.
func quickRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1
	}

	avail := make(map[rune]int, len(rb))
	for _, r := range rb {
		avail[r]++
	}

	matches := 0
	for _, r := range ra {
		if avail[r] > 0 {
			avail[r]--
			matches++
		}
	}

	return 2 * float64(matches) / float64(total)
}
