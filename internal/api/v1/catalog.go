package v1

import (
	"cmp"
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"strings"

	"github.com/vmunix/marquee/internal/browse"
	"github.com/vmunix/marquee/internal/tmdb"
)

const ndjsonContentType = "application/x-ndjson"

// loadGenres fills the genre cache on first use. The cache is marked loaded
// after one attempt, so the fetch must outlive a client that hangs up.
func (s *Server) loadGenres(r *http.Request) tmdb.GenreMap {
	return s.deps.Genres.Load(context.WithoutCancel(r.Context()), s.deps.GenreSource)
}

func (s *Server) getHome(w http.ResponseWriter, r *http.Request) {
	categories, ok := s.categoriesParam(w, r)
	if !ok {
		return
	}
	s.loadGenres(r)
	writeJSON(w, http.StatusOK, s.deps.Browser.LoadHome(r.Context(), categories))
}

func (s *Server) getBanner(w http.ResponseWriter, r *http.Request) {
	var resp bannerResponse
	if feature, ok := s.deps.Browser.LoadBannerFeature(r.Context()); ok {
		banner := s.deps.Browser.Banner(*feature)
		resp.Banner = &banner
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) listRows(w http.ResponseWriter, r *http.Request) {
	categories, ok := s.categoriesParam(w, r)
	if !ok {
		return
	}
	s.loadGenres(r)

	byCategory := s.deps.Browser.LoadAllCategoryRows(r.Context(), categories)
	resp := rowsResponse{Rows: make([]browse.Row, 0, len(categories))}
	for _, c := range categories {
		resp.Rows = append(resp.Rows, browse.Row{Category: c, Cards: s.deps.Browser.Cards(byCategory[c])})
	}
	writeJSON(w, http.StatusOK, resp)
}

// categoriesParam reads the category parameter, repeated or
// comma-separated. With no parameter the configured home rows are used.
func (s *Server) categoriesParam(w http.ResponseWriter, r *http.Request) ([]tmdb.Category, bool) {
	values := r.URL.Query()["category"]
	if len(values) == 0 {
		return s.homeRows(), true
	}
	var categories []tmdb.Category
	for _, v := range values {
		for _, name := range strings.Split(v, ",") {
			c, err := tmdb.ParseCategory(name)
			if err != nil {
				writeError(w, http.StatusBadRequest, "INVALID_CATEGORY", err.Error())
				return nil, false
			}
			categories = append(categories, c)
		}
	}
	return categories, true
}

func (s *Server) homeRows() []tmdb.Category {
	if len(s.deps.HomeRows) > 0 {
		return s.deps.HomeRows
	}
	return tmdb.HomeRows()
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	query := tmdb.NormalizeQuery(r.URL.Query().Get("q"))
	s.loadGenres(r)

	cards := s.deps.Browser.Cards(s.deps.Browser.Search(r.Context(), query))
	writeJSON(w, http.StatusOK, searchResponse{
		Query:   query,
		Results: cards,
		Total:   len(cards),
	})
}

// getTitle serves the detail modal. The query string may carry the summary
// the client already has (title, overview, poster_path, backdrop_path,
// vote_average) so the interim snapshot is populated. Clients that accept
// NDJSON get the interim and final snapshots as two lines; everyone else
// gets the final snapshot only.
func (s *Server) getTitle(w http.ResponseWriter, r *http.Request) {
	kind, ok := tmdb.ParseKind(r.PathValue("kind"))
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_KIND", "kind must be movie or tv")
		return
	}
	id, err := pathID(r, "id")
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid title ID")
		return
	}

	q := r.URL.Query()
	fallback := tmdb.Summary{
		ID:           id,
		Overview:     q.Get("overview"),
		PosterPath:   q.Get("poster_path"),
		BackdropPath: q.Get("backdrop_path"),
		VoteAverage:  queryFloat(r, "vote_average"),
		MediaType:    kind,
	}
	if kind == tmdb.KindTV {
		fallback.Name = q.Get("title")
	} else {
		fallback.Title = q.Get("title")
	}

	load := s.deps.Browser.LoadDetailView(r.Context(), id, kind, fallback)

	if strings.Contains(r.Header.Get("Accept"), ndjsonContentType) {
		s.streamTitle(w, load)
		return
	}

	final := load.Final()
	if !final.Complete {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Title not found")
		return
	}
	writeJSON(w, http.StatusOK, final)
}

func (s *Server) streamTitle(w http.ResponseWriter, load *browse.DetailLoad) {
	w.Header().Set("Content-Type", ndjsonContentType)
	w.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(w)
	flusher, _ := w.(http.Flusher)

	if err := enc.Encode(load.Interim); err != nil {
		s.log.Debug("detail stream aborted", "error", err)
		return
	}
	if flusher != nil {
		flusher.Flush()
	}
	if err := enc.Encode(load.Final()); err != nil {
		s.log.Debug("detail stream aborted", "error", err)
	}
}

func (s *Server) listGenres(w http.ResponseWriter, r *http.Request) {
	genres := s.loadGenres(r)
	resp := listGenresResponse{Genres: make([]genreResponse, 0, len(genres))}
	for id, name := range genres {
		resp.Genres = append(resp.Genres, genreResponse{ID: id, Name: name})
	}
	slices.SortFunc(resp.Genres, func(a, b genreResponse) int {
		return cmp.Compare(a.ID, b.ID)
	})
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, listCategoriesResponse{
		Categories: tmdb.ListingCategories(),
		HomeRows:   s.homeRows(),
	})
}
