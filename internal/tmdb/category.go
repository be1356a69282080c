package tmdb

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hbollon/go-edlib"
)

// ErrUnknownCategory is returned by ParseCategory for names with no
// listing endpoint.
var ErrUnknownCategory = errors.New("unknown category")

// suggestThreshold is the minimum Jaro-Winkler similarity for a "did you
// mean" hint.
const suggestThreshold = 0.8

// ParseCategory resolves a user-supplied name to a listing Category. The
// match is case-insensitive. When nothing matches, the error wraps
// ErrUnknownCategory and names the closest category if one is similar
// enough.
func ParseCategory(name string) (Category, error) {
	name = strings.TrimSpace(name)
	for _, c := range ListingCategories() {
		if strings.EqualFold(string(c), name) {
			return c, nil
		}
	}
	if suggestion, ok := SuggestCategory(name); ok {
		return "", fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownCategory, name, string(suggestion))
	}
	return "", fmt.Errorf("%w %q", ErrUnknownCategory, name)
}

// SuggestCategory returns the listing category most similar to name.
func SuggestCategory(name string) (Category, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return "", false
	}

	var best Category
	var bestScore float32
	for _, c := range ListingCategories() {
		score := edlib.JaroWinklerSimilarity(needle, strings.ToLower(string(c)))
		if score > bestScore {
			best, bestScore = c, score
		}
	}
	if bestScore < suggestThreshold {
		return "", false
	}
	return best, true
}
