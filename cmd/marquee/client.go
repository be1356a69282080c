package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vmunix/marquee/internal/browse"
	"github.com/vmunix/marquee/internal/session"
	"github.com/vmunix/marquee/internal/tmdb"
)

// ErrNotLoggedIn matches an APIError for a request the session gate
// rejected.
var ErrNotLoggedIn = errors.New("not logged in")

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("server error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("server error %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotLoggedIn && e.StatusCode == http.StatusUnauthorized
}

// Client wraps HTTP calls to the marquee server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a new marquee API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(serverURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: slog.Default().With("component", "client"),
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any, accept string) (*http.Response, error) {
	var r io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal error: %w", err)
		}
		r = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	c.log.Debug("request", "method", method, "path", path, "status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer func() { _ = resp.Body.Close() }()
		return nil, readAPIError(resp)
	}
	return resp, nil
}

func readAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var payload struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
		apiErr.Code = payload.Code
		apiErr.Message = payload.Error
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	return json.NewDecoder(resp.Body).Decode(result)
}

func (c *Client) post(ctx context.Context, path string, body any, result any) error {
	resp, err := c.do(ctx, http.MethodPost, path, body, "")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

func (c *Client) delete(ctx context.Context, path string) error {
	resp, err := c.do(ctx, http.MethodDelete, path, nil, "")
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

// API response types (mirror server types)

type SessionResponse struct {
	Authorized bool             `json:"authorized"`
	Session    *session.Session `json:"session,omitempty"`
}

type BannerResponse struct {
	Banner *browse.Banner `json:"banner,omitempty"`
}

type RowsResponse struct {
	Rows []browse.Row `json:"rows"`
}

type SearchResponse struct {
	Query   string        `json:"query"`
	Results []browse.Card `json:"results"`
	Total   int           `json:"total"`
}

type GenreResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type GenresResponse struct {
	Genres []GenreResponse `json:"genres"`
}

type CategoriesResponse struct {
	Categories []tmdb.Category `json:"categories"`
	HomeRows   []tmdb.Category `json:"home_rows"`
}

// TitleHint is what the caller already knows about a title. It fills the
// interim detail view.
type TitleHint struct {
	Title        string
	Overview     string
	PosterPath   string
	BackdropPath string
	VoteAverage  float64
}

func (h TitleHint) query() string {
	q := url.Values{}
	set := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	set("title", h.Title)
	set("overview", h.Overview)
	set("poster_path", h.PosterPath)
	set("backdrop_path", h.BackdropPath)
	if h.VoteAverage != 0 {
		q.Set("vote_average", strconv.FormatFloat(h.VoteAverage, 'f', -1, 64))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// Session returns the current session state.
func (c *Client) Session(ctx context.Context) (*SessionResponse, error) {
	var resp SessionResponse
	if err := c.get(ctx, "/api/v1/session", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login opens the session gate.
func (c *Client) Login(ctx context.Context, creds session.Credentials) (*SessionResponse, error) {
	var resp SessionResponse
	if err := c.post(ctx, "/api/v1/session/login", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register opens the session gate with a new account.
func (c *Client) Register(ctx context.Context, reg session.Registration) (*SessionResponse, error) {
	var resp SessionResponse
	if err := c.post(ctx, "/api/v1/session/register", reg, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout closes the session gate.
func (c *Client) Logout(ctx context.Context) error {
	return c.delete(ctx, "/api/v1/session")
}

// Home fetches the banner and the configured rows.
func (c *Client) Home(ctx context.Context) (*browse.Home, error) {
	var resp browse.Home
	if err := c.get(ctx, "/api/v1/home", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Banner fetches a random trending title. It returns nil when nothing is
// trending.
func (c *Client) Banner(ctx context.Context) (*browse.Banner, error) {
	var resp BannerResponse
	if err := c.get(ctx, "/api/v1/banner", &resp); err != nil {
		return nil, err
	}
	return resp.Banner, nil
}

// Rows fetches the given category rows, or the home rows when none are
// given.
func (c *Client) Rows(ctx context.Context, categories []tmdb.Category) ([]browse.Row, error) {
	path := "/api/v1/rows"
	if len(categories) > 0 {
		q := url.Values{}
		for _, cat := range categories {
			q.Add("category", string(cat))
		}
		path += "?" + q.Encode()
	}
	var resp RowsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Rows, nil
}

// Search runs a multi search for movies and tv shows.
func (c *Client) Search(ctx context.Context, query string) (*SearchResponse, error) {
	var resp SearchResponse
	if err := c.get(ctx, "/api/v1/search?q="+url.QueryEscape(query), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Title streams the detail view of a title: onView is called with the
// interim snapshot and then the final one.
func (c *Client) Title(ctx context.Context, kind tmdb.Kind, id int64, hint TitleHint, onView func(browse.DetailView)) error {
	path := fmt.Sprintf("/api/v1/titles/%s/%d%s", kind, id, hint.query())
	resp, err := c.do(ctx, http.MethodGet, path, nil, "application/x-ndjson")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var view browse.DetailView
		if err := json.Unmarshal(line, &view); err != nil {
			return fmt.Errorf("decode detail view: %w", err)
		}
		onView(view)
	}
	return scanner.Err()
}

// Genres lists the movie genres.
func (c *Client) Genres(ctx context.Context) (*GenresResponse, error) {
	var resp GenresResponse
	if err := c.get(ctx, "/api/v1/genres", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Categories lists the listing categories and the configured home rows.
func (c *Client) Categories(ctx context.Context) (*CategoriesResponse, error) {
	var resp CategoriesResponse
	if err := c.get(ctx, "/api/v1/categories", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
