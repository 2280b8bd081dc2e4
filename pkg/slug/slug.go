// Package slug turns free-form names into lower-case ASCII path segments.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	invalidChars = regexp.MustCompile(`[^\w\s-]`)
	separators   = regexp.MustCompile(`[-\s]+`)
)

// Make converts s to a slug: accents are decomposed and dropped, any other
// non-ASCII rune is removed, the result is lower-cased, characters other than
// letters, digits, underscores, spaces and hyphens are removed, and runs of
// spaces and hyphens collapse into a single hyphen. Leading and trailing
// hyphens and underscores are trimmed.
func Make(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))

	ascii, _, err := transform.String(t, s)
	if err != nil {
		ascii = s
	}

	ascii = invalidChars.ReplaceAllString(strings.ToLower(ascii), "")
	ascii = separators.ReplaceAllString(ascii, "-")

	return strings.Trim(ascii, "-_")
}

// MakeOr returns Make(s), or fallback when the slug is empty.
func MakeOr(s, fallback string) string {
	if out := Make(s); out != "" {
		return out
	}

	return fallback
}
