package browse

import (
	"strconv"

	"github.com/vmunix/marquee/internal/tmdb"
)

const (
	noRating      = "N/A"
	noDescription = "No description available"
)

// Card is a title as it appears in a row or the search grid.
type Card struct {
	ID        int64     `json:"id"`
	Kind      tmdb.Kind `json:"kind"`
	Title     string    `json:"title"`
	Rating    string    `json:"rating"`
	PosterURL string    `json:"poster_url"`
	Genres    []string  `json:"genres,omitempty"`
}

// Banner is the featured title at the top of the home page.
type Banner struct {
	ID          int64     `json:"id"`
	Kind        tmdb.Kind `json:"kind"`
	Title       string    `json:"title"`
	Overview    string    `json:"overview"`
	BackdropURL string    `json:"backdrop_url"`
}

// FormatRating renders a vote average with one decimal, or "N/A" when the
// title has no votes.
func FormatRating(vote float64) string {
	if vote == 0 {
		return noRating
	}
	return strconv.FormatFloat(vote, 'f', 1, 64)
}

// Card builds the card for s. Kind uses the documented fallback when the
// API omitted media_type.
func (o *Orchestrator) Card(s tmdb.Summary) Card {
	c := Card{
		ID:        s.ID,
		Kind:      s.ResolvedKind(),
		Title:     s.DisplayTitle(),
		Rating:    FormatRating(s.VoteAverage),
		PosterURL: o.catalog.PosterURL(s.PosterPath),
	}
	if o.genres != nil {
		c.Genres = o.genres.Names(s.GenreIDs)
	}
	return c
}

// Cards builds a card for every summary, in order.
func (o *Orchestrator) Cards(summaries []tmdb.Summary) []Card {
	cards := make([]Card, 0, len(summaries))
	for _, s := range summaries {
		cards = append(cards, o.Card(s))
	}
	return cards
}

// Banner builds the banner view of s.
func (o *Orchestrator) Banner(s tmdb.Summary) Banner {
	overview := s.Overview
	if overview == "" {
		overview = noDescription
	}
	return Banner{
		ID:          s.ID,
		Kind:        s.ResolvedKind(),
		Title:       s.DisplayTitle(),
		Overview:    overview,
		BackdropURL: o.catalog.BackdropURL(s.BackdropPath),
	}
}
