// Package v1 implements the JSON API a catalog front end renders from.
package v1

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

// Server is the v1 API server.
type Server struct {
	deps ServerDeps
	log  *slog.Logger
}

// New creates a new v1 API server.
func New(deps ServerDeps, log *slog.Logger) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	return &Server{deps: deps, log: log}, nil
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Session gate
	mux.HandleFunc("GET /api/v1/session", s.getSession)
	mux.HandleFunc("POST /api/v1/session/login", s.login)
	mux.HandleFunc("POST /api/v1/session/register", s.register)
	mux.HandleFunc("DELETE /api/v1/session", s.logout)

	// Catalog
	mux.HandleFunc("GET /api/v1/home", s.requireSession(s.getHome))
	mux.HandleFunc("GET /api/v1/banner", s.requireSession(s.getBanner))
	mux.HandleFunc("GET /api/v1/rows", s.requireSession(s.listRows))
	mux.HandleFunc("GET /api/v1/search", s.requireSession(s.search))
	mux.HandleFunc("GET /api/v1/titles/{kind}/{id}", s.requireSession(s.getTitle))
	mux.HandleFunc("GET /api/v1/genres", s.requireSession(s.listGenres))
	mux.HandleFunc("GET /api/v1/categories", s.requireSession(s.listCategories))
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	writeJSON(w, code, errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// pathID extracts an integer ID from the URL path.
func pathID(r *http.Request, name string) (int64, error) {
	idStr := r.PathValue(name)
	if idStr == "" {
		return 0, fmt.Errorf("missing path parameter: %s", name)
	}
	return strconv.ParseInt(idStr, 10, 64)
}

// queryFloat extracts an optional float from the query string.
func queryFloat(r *http.Request, name string) float64 {
	f, err := strconv.ParseFloat(r.URL.Query().Get(name), 64)
	if err != nil {
		return 0
	}
	return f
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
