// Package slugify derives URL-safe identifiers from titles.
package slugify

import (
	"regexp"
	"strings"
)

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphenRuns   = regexp.MustCompile(`-{2,}`)
)

// Make lowercases the title, turns whitespace runs into single hyphens,
// strips everything outside [a-z0-9-], collapses repeated hyphens and trims
// leading/trailing ones. It does not enforce uniqueness; that is a store
// constraint (unique index on the slug field).
func Make(title string) string {
	s := strings.ToLower(title)
	s = strings.Join(strings.Fields(s), "-")
	s = invalidChars.ReplaceAllString(s, "")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
