package tmdb

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeQuery prepares free text for the search endpoint: NFC
// composition (so "é" typed as e + combining accent matches) and collapsed
// whitespace. Returns "" for whitespace-only input.
func NormalizeQuery(query string) string {
	return strings.Join(strings.Fields(norm.NFC.String(query)), " ")
}
