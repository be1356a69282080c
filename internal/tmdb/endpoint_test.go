package tmdb

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEndpoint_StaticCategories(t *testing.T) {
	s := NewSettings("key-7f3a9c")

	categories := append(ListingCategories(), CategoryGenres)
	for _, c := range categories {
		t.Run(string(c), func(t *testing.T) {
			got := s.ResolveEndpoint(c)
			assert.True(t, strings.HasPrefix(got, DefaultBaseURL+"/"), got)
			assert.Equal(t, 1, strings.Count(got, DefaultBaseURL))
			assert.Equal(t, 1, strings.Count(got, "key-7f3a9c"))
			assert.Equal(t, 1, strings.Count(got, "api_key="))
		})
	}
}

func TestResolveEndpoint_Routes(t *testing.T) {
	s := Settings{BaseURL: "http://tmdb.test/3/", APIKey: "k"}

	tests := []struct {
		endpoint Endpoint
		path     string
		params   map[string]string
	}{
		{CategoryTrending, "/3/trending/all/week", nil},
		{CategoryTopRated, "/3/movie/top_rated", nil},
		{CategoryRomance, "/3/discover/movie", map[string]string{"with_genres": "10749"}},
		{CategoryTeluguMovies, "/3/discover/movie", map[string]string{"with_original_language": "te", "sort_by": "popularity.desc"}},
		{CategoryTV, "/3/tv/popular", nil},
		{DetailEndpoint(KindMovie, 550), "/3/movie/550", nil},
		{DetailEndpoint(KindTV, 1399), "/3/tv/1399", nil},
		{DetailEndpoint(KindPerson, 7), "/3/movie/7", nil},
	}

	for _, tt := range tests {
		u, err := url.Parse(s.ResolveEndpoint(tt.endpoint))
		require.NoError(t, err)
		assert.Equal(t, tt.path, u.Path)
		assert.Equal(t, "k", u.Query().Get("api_key"))
		for k, v := range tt.params {
			assert.Equal(t, v, u.Query().Get(k), k)
		}
	}
}

func TestResolveEndpoint_SearchIsPercentEncoded(t *testing.T) {
	s := NewSettings("k")

	got := s.ResolveEndpoint(SearchEndpoint("Tom & Jerry: 1+1=2?"))
	assert.Contains(t, got, "query=Tom%20%26%20Jerry%3A%201%2B1%3D2%3F")
	assert.NotContains(t, got, " ")

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "Tom & Jerry: 1+1=2?", u.Query().Get("query"))
}

func TestResolveEndpoint_UnknownCategoryPanics(t *testing.T) {
	s := NewSettings("k")
	assert.Panics(t, func() {
		s.ResolveEndpoint(Category("documentaries"))
	})
}

func TestResolveEndpoint_DoesNotMutateRoutes(t *testing.T) {
	s := NewSettings("first")
	_ = s.ResolveEndpoint(CategoryAction)
	s.APIKey = "second"
	got := s.ResolveEndpoint(CategoryAction)

	assert.NotContains(t, got, "first")
	assert.Empty(t, staticRoutes[CategoryAction].params.Get("api_key"))
}
