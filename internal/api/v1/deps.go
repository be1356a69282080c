package v1

import (
	"context"
	"errors"

	"github.com/vmunix/marquee/internal/browse"
	"github.com/vmunix/marquee/internal/session"
	"github.com/vmunix/marquee/internal/tmdb"
)

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// Browser composes catalog content. *browse.Orchestrator implements it.
type Browser interface {
	LoadHome(ctx context.Context, categories []tmdb.Category) browse.Home
	LoadBannerFeature(ctx context.Context) (*tmdb.Summary, bool)
	LoadAllCategoryRows(ctx context.Context, categories []tmdb.Category) map[tmdb.Category][]tmdb.Summary
	Search(ctx context.Context, query string) []tmdb.Summary
	LoadDetailView(ctx context.Context, id int64, kind tmdb.Kind, fallback tmdb.Summary) *browse.DetailLoad
	Banner(s tmdb.Summary) browse.Banner
	Cards(summaries []tmdb.Summary) []browse.Card
}

// Gate is the session gate. *session.Gate implements it.
type Gate interface {
	Login(ctx context.Context, c session.Credentials) (*session.Session, error)
	Register(ctx context.Context, r session.Registration) (*session.Session, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*session.Session, error)
	IsAuthorized(ctx context.Context) bool
}

// ServerDeps contains all dependencies for the API server.
type ServerDeps struct {
	Browser Browser
	Gate    Gate

	// Genres is loaded from GenreSource on first use.
	Genres      *tmdb.GenreCache
	GenreSource tmdb.GenreSource

	// HomeRows are the rows served when a request names none.
	HomeRows []tmdb.Category
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Browser == nil {
		return errors.Join(ErrMissingDependency, errors.New("browser is required"))
	}
	if d.Gate == nil {
		return errors.Join(ErrMissingDependency, errors.New("session gate is required"))
	}
	if d.Genres == nil || d.GenreSource == nil {
		return errors.Join(ErrMissingDependency, errors.New("genre cache and source are required"))
	}
	return nil
}
