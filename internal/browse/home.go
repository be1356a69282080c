package browse

import (
	"context"
	"sync"
	"time"

	"github.com/vmunix/marquee/internal/tmdb"
	"golang.org/x/sync/errgroup"
)

// LoadBannerFeature picks a random trending title. The bool is false when
// trending is empty or could not be fetched.
func (o *Orchestrator) LoadBannerFeature(ctx context.Context) (*tmdb.Summary, bool) {
	trending := o.catalog.ListCategory(ctx, tmdb.CategoryTrending)
	if len(trending) == 0 {
		return nil, false
	}
	pick := trending[o.intN(len(trending))]
	return &pick, true
}

// LoadAllCategoryRows fetches every category concurrently and waits for all
// of them. Each requested category is present in the result; one that
// failed maps to an empty slice and does not affect the others.
func (o *Orchestrator) LoadAllCategoryRows(ctx context.Context, categories []tmdb.Category) map[tmdb.Category][]tmdb.Summary {
	start := time.Now()
	rows := make(map[tmdb.Category][]tmdb.Summary, len(categories))
	var mu sync.Mutex

	// A plain Group: no derived context, so nothing is canceled when a
	// sibling finishes first.
	var g errgroup.Group
	for _, c := range categories {
		mu.Lock()
		_, seen := rows[c]
		rows[c] = []tmdb.Summary{}
		mu.Unlock()
		if seen {
			continue
		}

		g.Go(func() error {
			items := o.catalog.ListCategory(ctx, c)
			if items == nil {
				items = []tmdb.Summary{}
			}
			mu.Lock()
			rows[c] = items
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	o.log.Debug("rows loaded", "categories", len(rows), "duration_ms", time.Since(start).Milliseconds())
	return rows
}

// Row is one rendered category row.
type Row struct {
	Category tmdb.Category `json:"category"`
	Cards    []Card        `json:"cards"`
}

// Home is everything the home page shows.
type Home struct {
	Banner *Banner `json:"banner,omitempty"`
	Rows   []Row   `json:"rows"`
}

// LoadHome loads the banner, then all rows concurrently. Rows keep the
// order of categories; an empty row means "no content available".
func (o *Orchestrator) LoadHome(ctx context.Context, categories []tmdb.Category) Home {
	var home Home
	if feature, ok := o.LoadBannerFeature(ctx); ok {
		banner := o.Banner(*feature)
		home.Banner = &banner
	}

	byCategory := o.LoadAllCategoryRows(ctx, categories)
	home.Rows = make([]Row, 0, len(categories))
	for _, c := range categories {
		home.Rows = append(home.Rows, Row{Category: c, Cards: o.Cards(byCategory[c])})
	}
	return home
}
