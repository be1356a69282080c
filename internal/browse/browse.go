// Package browse composes catalog calls into the content a catalog view
// renders: the home banner, category rows, the search grid and the detail
// modal. It returns plain values and image URLs and never renders anything.
package browse

//go:generate mockgen -destination=mocks/mock_catalog.go -package=mocks . Catalog

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/vmunix/marquee/internal/tmdb"
)

// Catalog is the subset of the TMDB client the orchestrator uses.
// *tmdb.Client implements it.
type Catalog interface {
	ListCategory(ctx context.Context, category tmdb.Category) []tmdb.Summary
	Search(ctx context.Context, query string) []tmdb.Summary
	GetDetail(ctx context.Context, id int64, kind tmdb.Kind) (*tmdb.Detail, bool)
	PosterURL(path string) string
	BackdropURL(path string) string
}

// Orchestrator sequences and parallelizes catalog calls.
type Orchestrator struct {
	catalog Catalog
	genres  *tmdb.GenreCache
	intN    func(n int) int
	log     *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithGenres resolves genre ids on cards against cache.
func WithGenres(cache *tmdb.GenreCache) Option {
	return func(o *Orchestrator) {
		o.genres = cache
	}
}

// WithRand replaces the banner picker. intN must return a value in [0, n).
func WithRand(intN func(n int) int) Option {
	return func(o *Orchestrator) {
		o.intN = intN
	}
}

// WithLogger sets the orchestrator's logger.
func WithLogger(log *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.log = log
	}
}

// New creates an orchestrator over catalog.
func New(catalog Catalog, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		catalog: catalog,
		intN:    rand.IntN,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Search runs a multi search and keeps only movies and tv shows.
func (o *Orchestrator) Search(ctx context.Context, query string) []tmdb.Summary {
	results := FilterSearchResults(o.catalog.Search(ctx, query))
	o.log.Debug("search complete", "query", query, "results", len(results))
	return results
}

// FilterSearchResults drops entries whose media_type is not movie or tv,
// such as people, preserving the order of the rest. Only the explicit
// media_type counts here: a person has a name, so the title/name fallback
// would misclassify them as tv.
func FilterSearchResults(results []tmdb.Summary) []tmdb.Summary {
	filtered := make([]tmdb.Summary, 0, len(results))
	for _, r := range results {
		if r.MediaType.IsMedia() {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
