package tmdb

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Endpoint is a TMDB request target. It is either a static Category or a
// parameterized endpoint built by SearchEndpoint or DetailEndpoint.
type Endpoint interface {
	route() route
}

type route struct {
	path   string
	params url.Values
}

// Category names a predefined content query.
type Category string

const (
	CategoryTrending     Category = "trending"
	CategoryTopRated     Category = "topRated"
	CategoryAction       Category = "action"
	CategoryComedy       Category = "comedy"
	CategoryHorror       Category = "horror"
	CategoryRomance      Category = "romance"
	CategoryTV           Category = "tv"
	CategoryTeluguMovies Category = "teluguMovies"
	CategoryGenres       Category = "genres"
)

// staticRoutes holds every Category endpoint. Genre ids follow TMDB's
// movie genre list.
var staticRoutes = map[Category]route{
	CategoryTrending:     {path: "/trending/all/week"},
	CategoryTopRated:     {path: "/movie/top_rated"},
	CategoryAction:       {path: "/discover/movie", params: url.Values{"with_genres": {"28"}}},
	CategoryComedy:       {path: "/discover/movie", params: url.Values{"with_genres": {"35"}}},
	CategoryHorror:       {path: "/discover/movie", params: url.Values{"with_genres": {"27"}}},
	CategoryRomance:      {path: "/discover/movie", params: url.Values{"with_genres": {"10749"}}},
	CategoryTV:           {path: "/tv/popular"},
	CategoryTeluguMovies: {path: "/discover/movie", params: url.Values{"with_original_language": {"te"}, "sort_by": {"popularity.desc"}}},
	CategoryGenres:       {path: "/genre/movie/list"},
}

// ListingCategories returns the categories that yield a list of titles.
func ListingCategories() []Category {
	return []Category{
		CategoryTrending,
		CategoryTopRated,
		CategoryAction,
		CategoryComedy,
		CategoryHorror,
		CategoryRomance,
		CategoryTV,
		CategoryTeluguMovies,
	}
}

// HomeRows returns the default home page rows in display order.
func HomeRows() []Category {
	return []Category{
		CategoryTrending,
		CategoryTeluguMovies,
		CategoryTopRated,
		CategoryAction,
		CategoryComedy,
		CategoryHorror,
		CategoryRomance,
		CategoryTV,
	}
}

// route panics for a Category that has no endpoint. Use ParseCategory to
// validate untrusted names first.
func (c Category) route() route {
	r, ok := staticRoutes[c]
	if !ok {
		panic(fmt.Sprintf("tmdb: unknown category %q", string(c)))
	}
	return r
}

type searchEndpoint struct {
	query string
}

// SearchEndpoint returns the multi-search endpoint for query.
func SearchEndpoint(query string) Endpoint {
	return searchEndpoint{query: query}
}

func (e searchEndpoint) route() route {
	return route{path: "/search/multi", params: url.Values{"query": {e.query}}}
}

type detailEndpoint struct {
	kind Kind
	id   int64
}

// DetailEndpoint returns the movie or tv details endpoint for id. Any kind
// other than KindTV selects the movie endpoint.
func DetailEndpoint(kind Kind, id int64) Endpoint {
	return detailEndpoint{kind: detailKind(kind), id: id}
}

func detailKind(kind Kind) Kind {
	if kind == KindTV {
		return KindTV
	}
	return KindMovie
}

func (e detailEndpoint) route() route {
	return route{path: "/" + string(e.kind) + "/" + strconv.FormatInt(e.id, 10)}
}

// ResolveEndpoint builds the fully qualified URL for e. The api_key
// parameter is appended exactly once and every value is percent-encoded.
func (s Settings) ResolveEndpoint(e Endpoint) string {
	r := e.route()
	q := make(url.Values, len(r.params)+1)
	for k, v := range r.params {
		q[k] = v
	}
	q.Set("api_key", s.APIKey)
	// url.Values encodes spaces as '+'; TMDB accepts both but %20 is
	// unambiguous. A literal '+' is already escaped to %2B.
	encoded := strings.ReplaceAll(q.Encode(), "+", "%20")
	return strings.TrimRight(s.BaseURL, "/") + r.path + "?" + encoded
}
