package tmdb

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary_ResolvedKind(t *testing.T) {
	tests := []struct {
		name    string
		summary Summary
		want    Kind
	}{
		{"explicit movie", Summary{MediaType: KindMovie, Name: "odd"}, KindMovie},
		{"explicit tv", Summary{MediaType: KindTV, Title: "odd"}, KindTV},
		{"explicit person", Summary{MediaType: KindPerson, Name: "Keanu Reeves"}, KindPerson},
		{"title implies movie", Summary{Title: "Fight Club"}, KindMovie},
		{"name implies tv", Summary{Name: "Dark"}, KindTV},
		{"nothing to go on", Summary{ID: 1}, KindUnknown},
		{"unrecognised media type falls back", Summary{MediaType: "collection", Title: "Alien"}, KindMovie},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.summary.ResolvedKind())
		})
	}
}

func TestSummary_DisplayTitle(t *testing.T) {
	assert.Equal(t, "Fight Club", (&Summary{Title: "Fight Club", Name: "ignored"}).DisplayTitle())
	assert.Equal(t, "Dark", (&Summary{Name: "Dark"}).DisplayTitle())
}

func TestDetail_Year(t *testing.T) {
	assert.Equal(t, "2020", (&Detail{Summary: Summary{ReleaseDate: "2020-05-01"}}).Year())
	assert.Equal(t, "2011", (&Detail{Summary: Summary{FirstAirDate: "2011-04-17"}}).Year())
	assert.Equal(t, "1999", (&Detail{Summary: Summary{ReleaseDate: "1999"}}).Year())
	assert.Equal(t, "", (&Detail{}).Year())
}

func TestDetail_Decode(t *testing.T) {
	body := `{"id":550,"title":"Fight Club","overview":"...","vote_average":8.4,
		"original_language":"en","release_date":"1999-10-15",
		"genres":[{"id":18,"name":"Drama"},{"id":53,"name":"Thriller"}],"runtime":139}`

	var d Detail
	require.NoError(t, json.Unmarshal([]byte(body), &d))
	assert.Equal(t, int64(550), d.ID)
	assert.Equal(t, "en", d.OriginalLanguage)
	assert.Equal(t, []string{"Drama", "Thriller"}, d.GenreNames())
	assert.Equal(t, 139, d.Runtime)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"tv", KindTV, true},
		{" TV ", KindTV, true},
		{"movie", KindMovie, true},
		{"Movie", KindMovie, true},
		{"", KindUnknown, false},
		{"person", KindUnknown, false},
		{"movies", KindUnknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseKind(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestGenreMap_Names(t *testing.T) {
	m := GenreMap{28: "Action", 35: "Comedy"}
	assert.Equal(t, []string{"Comedy", "Action"}, m.Names([]int{35, 99, 28}))
	assert.Empty(t, m.Names(nil))
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "", NormalizeQuery("   "))
	assert.Equal(t, "the matrix", NormalizeQuery("  the \t matrix\n"))
	// e + combining acute composes to a single rune.
	assert.Equal(t, "Am\u00e9lie", NormalizeQuery("Ame\u0301lie"))
}
