// Package tmdb provides a client for The Movie Database API.
package tmdb

import "strings"

// Kind discriminates between movie and tv records.
type Kind string

const (
	KindMovie   Kind = "movie"
	KindTV      Kind = "tv"
	KindPerson  Kind = "person"
	KindUnknown Kind = ""
)

// ParseKind parses a user-supplied media kind. Only "movie" and "tv" are
// accepted, case-insensitively; the bool is false for anything else.
func ParseKind(s string) (Kind, bool) {
	s = strings.TrimSpace(s)
	switch {
	case strings.EqualFold(s, string(KindMovie)):
		return KindMovie, true
	case strings.EqualFold(s, string(KindTV)):
		return KindTV, true
	default:
		return KindUnknown, false
	}
}

// IsMedia reports whether k is a movie or tv kind.
func (k Kind) IsMedia() bool {
	return k == KindMovie || k == KindTV
}

// Summary is the minimal record returned by listing and search endpoints.
// Movies populate Title and ReleaseDate, tv shows Name and FirstAirDate.
type Summary struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title,omitempty"`
	Name             string  `json:"name,omitempty"`
	PosterPath       string  `json:"poster_path,omitempty"`   // "/abc123.jpg"
	BackdropPath     string  `json:"backdrop_path,omitempty"` // "/def456.jpg"
	Overview         string  `json:"overview,omitempty"`
	VoteAverage      float64 `json:"vote_average"`
	OriginalLanguage string  `json:"original_language,omitempty"` // "en"
	MediaType        Kind    `json:"media_type,omitempty"`        // only set by trending and multi search
	GenreIDs         []int   `json:"genre_ids,omitempty"`
	ReleaseDate      string  `json:"release_date,omitempty"`   // "2024-03-01"
	FirstAirDate     string  `json:"first_air_date,omitempty"` // "2019-07-12"
}

// DisplayTitle returns Title, falling back to Name for tv records.
func (s *Summary) DisplayTitle() string {
	if s.Title != "" {
		return s.Title
	}
	return s.Name
}

// ResolvedKind returns the explicit media_type when the API sent one.
//
// Listing endpoints such as /movie/top_rated and /tv/popular omit
// media_type, so the kind falls back to which title field is populated:
// Title means movie, Name means tv. The heuristic is ambiguous for person
// records and partial payloads; those resolve to KindUnknown.
func (s *Summary) ResolvedKind() Kind {
	switch s.MediaType {
	case KindMovie, KindTV, KindPerson:
		return s.MediaType
	}
	switch {
	case s.Title != "":
		return KindMovie
	case s.Name != "":
		return KindTV
	default:
		return KindUnknown
	}
}

// Date returns the release date for movies or the first air date for tv.
func (s *Summary) Date() string {
	if s.ReleaseDate != "" {
		return s.ReleaseDate
	}
	return s.FirstAirDate
}

// Genre represents a movie or tv genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Detail is the full record for a single movie or tv show. It is a
// superset of Summary.
type Detail struct {
	Summary
	Genres         []Genre `json:"genres"`
	Runtime        int     `json:"runtime,omitempty"` // minutes, movies only
	EpisodeRunTime []int   `json:"episode_run_time,omitempty"`
	Tagline        string  `json:"tagline,omitempty"`
	Status         string  `json:"status,omitempty"`
	VoteCount      int     `json:"vote_count,omitempty"`
}

// Year extracts the leading segment of the release or first air date,
// up to the first '-'. Returns "" when no date is known.
func (d *Detail) Year() string {
	date := d.Date()
	if date == "" {
		return ""
	}
	year, _, _ := strings.Cut(date, "-")
	return year
}

// GenreNames returns the names of the detail's genres in API order.
func (d *Detail) GenreNames() []string {
	names := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		if g.Name != "" {
			names = append(names, g.Name)
		}
	}
	return names
}

// GenreMap maps genre ids to display names.
type GenreMap map[int]string

// Names resolves ids to names, skipping ids the map does not know.
func (m GenreMap) Names(ids []int) []string {
	var names []string
	for _, id := range ids {
		if name, ok := m[id]; ok {
			names = append(names, name)
		}
	}
	return names
}

// listResponse is the envelope of every listing and search endpoint.
type listResponse struct {
	Page    int       `json:"page"`
	Results []Summary `json:"results"`
}

type genreListResponse struct {
	Genres []Genre `json:"genres"`
}
