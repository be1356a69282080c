package tmdb

import "strings"

const (
	DefaultBaseURL      = "https://api.themoviedb.org/3"
	DefaultImageBaseURL = "https://image.tmdb.org/t/p"
	DefaultPosterSize   = "w500"
	DefaultBackdropSize = "original"
)

// Placeholder images used when a record has no poster or backdrop.
const (
	PosterPlaceholder   = "https://via.placeholder.com/500x750/1a1a1a/666666?text=No+Image"
	BackdropPlaceholder = "https://via.placeholder.com/1920x1080/1a1a1a/666666?text=No+Image"
)

// Settings are the immutable values every request and image URL is built
// from. The zero value of any field is replaced by its default in
// NewSettings.
type Settings struct {
	BaseURL      string
	APIKey       string
	ImageBaseURL string
	PosterSize   string // w92, w154, w185, w342, w500, w780, original
	BackdropSize string // w300, w780, w1280, original
}

// NewSettings returns Settings for apiKey with defaults applied.
func NewSettings(apiKey string) Settings {
	return Settings{APIKey: apiKey}.withDefaults()
}

func (s Settings) withDefaults() Settings {
	if s.BaseURL == "" {
		s.BaseURL = DefaultBaseURL
	}
	if s.ImageBaseURL == "" {
		s.ImageBaseURL = DefaultImageBaseURL
	}
	if s.PosterSize == "" {
		s.PosterSize = DefaultPosterSize
	}
	if s.BackdropSize == "" {
		s.BackdropSize = DefaultBackdropSize
	}
	return s
}

// PosterURL returns the full poster image URL, or PosterPlaceholder when
// path is empty.
func (s Settings) PosterURL(path string) string {
	if path == "" {
		return PosterPlaceholder
	}
	return s.imageURL(s.PosterSize, path)
}

// BackdropURL returns the full backdrop image URL, or BackdropPlaceholder
// when path is empty.
func (s Settings) BackdropURL(path string) string {
	if path == "" {
		return BackdropPlaceholder
	}
	return s.imageURL(s.BackdropSize, path)
}

func (s Settings) imageURL(size, path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(s.ImageBaseURL, "/") + "/" + size + path
}
