// internal/api/v1/types.go
package v1

import (
	"github.com/vmunix/marquee/internal/browse"
	"github.com/vmunix/marquee/internal/session"
	"github.com/vmunix/marquee/internal/tmdb"
)

// sessionResponse is the response for GET /session and a successful login.
type sessionResponse struct {
	Authorized bool             `json:"authorized"`
	Session    *session.Session `json:"session,omitempty"`
}

// bannerResponse is the response for GET /banner. Banner is omitted when
// nothing is trending.
type bannerResponse struct {
	Banner *browse.Banner `json:"banner,omitempty"`
}

// rowsResponse is the response for GET /rows.
type rowsResponse struct {
	Rows []browse.Row `json:"rows"`
}

// searchResponse is the response for GET /search.
type searchResponse struct {
	Query   string        `json:"query"`
	Results []browse.Card `json:"results"`
	Total   int           `json:"total"`
}

// genreResponse is one entry of GET /genres.
type genreResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type listGenresResponse struct {
	Genres []genreResponse `json:"genres"`
}

type listCategoriesResponse struct {
	Categories []tmdb.Category `json:"categories"`
	HomeRows   []tmdb.Category `json:"home_rows"`
}
