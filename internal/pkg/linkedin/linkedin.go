// Package linkedin validates and normalizes LinkedIn profile URLs.
package linkedin

import (
	"regexp"
	"strings"
)

// profileRe accepts, case-insensitively on scheme and host: an optional
// http(s) scheme, an optional www prefix, the linkedin.com host and a
// /in/<token> or /pub/<token>/<more> path with an optional trailing slash.
// The pattern is anchored at the start only, so trailing content after a
// valid prefix is accepted. Same anchoring quirk as validate.Email; kept
// intentionally for behavioral parity.
var profileRe = regexp.MustCompile(`^(?i:https?://)?(?i:www\.)?(?i:linkedin\.com)(?:/in/[\w-]+/?|/pub/[\w-]+/[\w/]+/?)`)

// ValidProfileURL reports whether s (after trimming) is a LinkedIn
// profile URL.
func ValidProfileURL(s string) bool {
	return profileRe.MatchString(strings.TrimSpace(s))
}

// NormalizeProfileURL trims whitespace and prefixes "https://" when the
// URL does not already start with "http". It does not lowercase, strip
// trailing slashes or remove query parameters, and is idempotent on
// already-absolute URLs.
func NormalizeProfileURL(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "http") {
		s = "https://" + s
	}
	return s
}
