// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"

	"github.com/vmunix/marquee/internal/tmdb"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Sizes TMDB serves; "" means use the default.
var validPosterSizes = map[string]bool{
	"w92": true, "w154": true, "w185": true, "w342": true, "w500": true, "w780": true, "original": true, "": true,
}

var validBackdropSizes = map[string]bool{
	"w300": true, "w780": true, "w1280": true, "original": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// TMDB validation
	if c.TMDB.APIKey == "" {
		errs = append(errs, "tmdb.api_key: required")
	}
	for field, raw := range map[string]string{
		"tmdb.base_url":       c.TMDB.BaseURL,
		"tmdb.image_base_url": c.TMDB.ImageBaseURL,
	} {
		if raw == "" {
			continue
		}
		if u, err := url.Parse(raw); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Sprintf("%s: must be an absolute http(s) URL, got %q", field, raw))
		}
	}
	if !validPosterSizes[c.TMDB.PosterSize] {
		errs = append(errs, fmt.Sprintf("tmdb.poster_size: must be one of w92, w154, w185, w342, w500, w780, original; got %q", c.TMDB.PosterSize))
	}
	if !validBackdropSizes[c.TMDB.BackdropSize] {
		errs = append(errs, fmt.Sprintf("tmdb.backdrop_size: must be one of w300, w780, w1280, original; got %q", c.TMDB.BackdropSize))
	}

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	// Home rows validation
	for i, name := range c.Home.Rows {
		if _, err := tmdb.ParseCategory(name); err != nil {
			errs = append(errs, fmt.Sprintf("home.rows[%d]: %v", i, err))
		}
	}

	return errs
}
