package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// FailureKind classifies a failed fetch.
type FailureKind string

const (
	FailureTransport FailureKind = "transport"
	FailureStatus    FailureKind = "status"
	FailureDecode    FailureKind = "decode"
)

// FetchError describes why a request produced no data. Every Client
// accessor collapses it to an empty or absent result; it is exported for
// callers of FetchJSON.
type FetchError struct {
	Kind       FailureKind
	URL        string // api_key redacted
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case FailureStatus:
		return fmt.Sprintf("TMDB API error: status %d", e.StatusCode)
	default:
		return fmt.Sprintf("TMDB %s failure: %v", e.Kind, e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client is a TMDB API client. It makes at most one request per call, never
// retries and caches nothing; callers' contexts bound how long a request
// may take.
type Client struct {
	settings   Settings
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom API base URL (for testing).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.settings.BaseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger failures are reported to.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a new TMDB client from settings. Empty settings fields
// take their defaults.
func NewClient(settings Settings, opts ...Option) *Client {
	c := &Client{
		settings:   settings.withDefaults(),
		httpClient: &http.Client{},
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Settings returns the client's settings.
func (c *Client) Settings() Settings {
	return c.settings
}

// PosterURL returns the poster URL for path, or the poster placeholder.
func (c *Client) PosterURL(path string) string {
	return c.settings.PosterURL(path)
}

// BackdropURL returns the backdrop URL for path, or the backdrop placeholder.
func (c *Client) BackdropURL(path string) string {
	return c.settings.BackdropURL(path)
}

// FetchJSON performs a single GET against rawURL and decodes the body into
// dst. Any failure is logged here and returned as a *FetchError.
func (c *Client) FetchJSON(ctx context.Context, rawURL string, dst any) error {
	err := c.fetch(ctx, rawURL, dst)
	if err != nil {
		c.log.Warn("fetch failed",
			"kind", err.Kind,
			"url", err.URL,
			"status", err.StatusCode,
			"error", err.Err,
		)
		return err
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, rawURL string, dst any) *FetchError {
	fail := func(kind FailureKind, status int, err error) *FetchError {
		return &FetchError{Kind: kind, URL: redact(rawURL), StatusCode: status, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fail(FailureTransport, 0, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fail(FailureTransport, 0, fmt.Errorf("execute request: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return fail(FailureStatus, resp.StatusCode, fmt.Errorf("unexpected status: %s", resp.Status))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fail(FailureDecode, resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// ListCategory fetches the titles of a listing category. Returns an empty
// slice when the request fails or the category has no results.
func (c *Client) ListCategory(ctx context.Context, category Category) []Summary {
	return c.list(ctx, c.settings.ResolveEndpoint(category))
}

// Search runs a multi search. Empty or whitespace-only queries return an
// empty slice without a request. Results may include people; see
// Summary.ResolvedKind.
func (c *Client) Search(ctx context.Context, query string) []Summary {
	query = NormalizeQuery(query)
	if query == "" {
		return []Summary{}
	}
	return c.list(ctx, c.settings.ResolveEndpoint(SearchEndpoint(query)))
}

func (c *Client) list(ctx context.Context, rawURL string) []Summary {
	var resp listResponse
	if err := c.FetchJSON(ctx, rawURL, &resp); err != nil || resp.Results == nil {
		return []Summary{}
	}
	return resp.Results
}

// GetDetail fetches the full record for a movie or tv show. Any kind other
// than KindTV is fetched as a movie. The bool is false when the fetch
// failed.
func (c *Client) GetDetail(ctx context.Context, id int64, kind Kind) (*Detail, bool) {
	var detail Detail
	if err := c.FetchJSON(ctx, c.settings.ResolveEndpoint(DetailEndpoint(kind, id)), &detail); err != nil {
		return nil, false
	}
	if detail.MediaType == KindUnknown {
		detail.MediaType = detailKind(kind)
	}
	return &detail, true
}

// GetGenreMap fetches the movie genre list as an id to name map. The map is
// empty, never nil, when the request fails.
func (c *Client) GetGenreMap(ctx context.Context) GenreMap {
	genres := make(GenreMap)
	var resp genreListResponse
	if err := c.FetchJSON(ctx, c.settings.ResolveEndpoint(CategoryGenres), &resp); err != nil {
		return genres
	}
	for _, g := range resp.Genres {
		genres[g.ID] = g.Name
	}
	return genres
}

// redact strips the api_key value from rawURL for logging.
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid url>"
	}
	q := u.Query()
	if q.Has("api_key") {
		q.Set("api_key", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
