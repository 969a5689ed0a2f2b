package listing

import (
	"hash/fnv"
	"strings"
	"time"
)

// MaxLongDescription caps free-text descriptions sourced from markup.
// GraphQL-sourced event descriptions are never truncated (they are
// always empty in this flow), so the cap lives with the release path.
const MaxLongDescription = 500

// releaseDateLayout matches the human-readable date on release pages,
// e.g. "June 5, 2021".
const releaseDateLayout = "January 2, 2006"

// Truncate shortens s to at most max runes.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// HashID derives a deterministic identifier from content text. The same
// text always yields the same id, across runs, so additional_fields stay
// reproducible.
func HashID(text string) int64 {
	h := fnv.New64a()
	h.Write([]byte(text))
	return int64(h.Sum64())
}

// ParseReleaseDate converts "<Month> <Day>, <Year>" into "YYYY-MM-DD".
// Unparseable input reports ok=false; the raw string is never propagated.
func ParseReleaseDate(raw string) (string, bool) {
	t, err := time.Parse(releaseDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

// NormSpace collapses all runs of whitespace into single spaces and trims
// the ends.
func NormSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// StringPtr returns a pointer to s, or nil when s is empty. Optional
// backend columns are null rather than empty strings.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
