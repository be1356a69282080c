package browse

import (
	"context"
	"strconv"
	"strings"

	"github.com/vmunix/marquee/internal/tmdb"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const (
	overviewLoading  = "Loading..."
	noOverview       = "No overview available"
	unknownYear      = "Unknown"
	noLanguage       = "N/A"
	genresNotPresent = "Genres not available"
)

// DetailView is one renderable snapshot of the detail modal.
type DetailView struct {
	ID           int64     `json:"id"`
	Kind         tmdb.Kind `json:"kind"`
	Title        string    `json:"title"`
	Overview     string    `json:"overview"`
	Rating       string    `json:"rating"`
	PosterURL    string    `json:"poster_url"`
	BackdropURL  string    `json:"backdrop_url"`
	Year         string    `json:"year,omitempty"`
	Language     string    `json:"language,omitempty"`
	LanguageName string    `json:"language_name,omitempty"`
	Genres       string    `json:"genres,omitempty"`
	Complete     bool      `json:"complete"`
}

// DetailLoad is an in-flight detail request. Interim is usable
// immediately; Final blocks until the full record has been fetched and
// merged.
type DetailLoad struct {
	Interim DetailView

	done  chan struct{}
	final DetailView
}

// Done is closed once the final snapshot is ready.
func (l *DetailLoad) Done() <-chan struct{} {
	return l.done
}

// Final waits for and returns the final snapshot. If the detail fetch
// failed it equals Interim.
func (l *DetailLoad) Final() DetailView {
	<-l.done
	return l.final
}

// LoadDetailView starts a two-phase detail load for id. The interim
// snapshot is built from fallback alone; the final one prefers the fields
// of the fetched detail record.
func (o *Orchestrator) LoadDetailView(ctx context.Context, id int64, kind tmdb.Kind, fallback tmdb.Summary) *DetailLoad {
	load := &DetailLoad{
		Interim: o.interimView(id, kind, fallback),
		done:    make(chan struct{}),
	}

	go func() {
		defer close(load.done)
		detail, ok := o.catalog.GetDetail(ctx, id, kind)
		if !ok {
			o.log.Debug("detail unavailable, keeping interim view", "id", id, "kind", kind)
			load.final = load.Interim
			return
		}
		load.final = o.mergeDetail(load.Interim, detail)
	}()

	return load
}

func (o *Orchestrator) interimView(id int64, kind tmdb.Kind, s tmdb.Summary) DetailView {
	overview := s.Overview
	if overview == "" {
		overview = overviewLoading
	}
	if !kind.IsMedia() {
		kind = tmdb.KindMovie
	}
	return DetailView{
		ID:          id,
		Kind:        kind,
		Title:       s.DisplayTitle(),
		Overview:    overview,
		Rating:      FormatRating(s.VoteAverage),
		PosterURL:   o.catalog.PosterURL(s.PosterPath),
		BackdropURL: o.catalog.BackdropURL(s.BackdropPath),
	}
}

// mergeDetail overlays d on the interim view.
func (o *Orchestrator) mergeDetail(interim DetailView, d *tmdb.Detail) DetailView {
	v := interim
	v.Complete = true

	if title := d.DisplayTitle(); title != "" {
		v.Title = title
	}
	v.Overview = d.Overview
	if v.Overview == "" {
		v.Overview = noOverview
	}
	// A fetched detail always carries a vote, so zero is a real score here.
	v.Rating = strconv.FormatFloat(d.VoteAverage, 'f', 1, 64)
	if d.PosterPath != "" {
		v.PosterURL = o.catalog.PosterURL(d.PosterPath)
	}
	if d.BackdropPath != "" {
		v.BackdropURL = o.catalog.BackdropURL(d.BackdropPath)
	}

	v.Year = d.Year()
	if v.Year == "" {
		v.Year = unknownYear
	}

	v.Language, v.LanguageName = languageLabels(d.OriginalLanguage)

	if names := d.GenreNames(); len(names) > 0 {
		v.Genres = strings.Join(names, ", ")
	} else {
		v.Genres = genresNotPresent
	}
	return v
}

// languageLabels returns the upper-cased ISO 639-1 code and its English
// name, e.g. "TE", "Telugu". Unknown codes get no name.
func languageLabels(code string) (string, string) {
	code = strings.TrimSpace(code)
	if code == "" {
		return noLanguage, ""
	}
	// A Caser is stateful, so one is built per call.
	upper := cases.Upper(language.Und).String(code)
	tag, err := language.Parse(code)
	if err != nil {
		return upper, ""
	}
	return upper, display.English.Languages().Name(tag)
}
