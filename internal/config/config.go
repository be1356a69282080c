// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/vmunix/marquee/internal/tmdb"
)

// EnvPrefix prefixes every environment override, e.g. MARQUEE_TMDB_API_KEY.
const EnvPrefix = "MARQUEE_"

// Config is the root configuration structure.
type Config struct {
	TMDB    TMDBConfig    `toml:"tmdb" envPrefix:"TMDB_"`
	Server  ServerConfig  `toml:"server" envPrefix:"SERVER_"`
	Session SessionConfig `toml:"session" envPrefix:"SESSION_"`
	Home    HomeConfig    `toml:"home" envPrefix:"HOME_"`
}

type TMDBConfig struct {
	APIKey       string `toml:"api_key" env:"API_KEY"`
	BaseURL      string `toml:"base_url" env:"BASE_URL"`
	ImageBaseURL string `toml:"image_base_url" env:"IMAGE_BASE_URL"`
	PosterSize   string `toml:"poster_size" env:"POSTER_SIZE"`
	BackdropSize string `toml:"backdrop_size" env:"BACKDROP_SIZE"`
}

type ServerConfig struct {
	Host     string `toml:"host" env:"HOST"`
	Port     int    `toml:"port" env:"PORT"`
	LogLevel string `toml:"log_level" env:"LOG_LEVEL"`
}

type SessionConfig struct {
	Path string `toml:"path" env:"PATH"`
}

type HomeConfig struct {
	Rows []string `toml:"rows" env:"ROWS" envSeparator:","`
}

// Settings converts the [tmdb] section to client settings.
func (c TMDBConfig) Settings() tmdb.Settings {
	return tmdb.Settings{
		BaseURL:      c.BaseURL,
		APIKey:       c.APIKey,
		ImageBaseURL: c.ImageBaseURL,
		PosterSize:   c.PosterSize,
		BackdropSize: c.BackdropSize,
	}
}

// Categories parses the configured home rows.
func (c HomeConfig) Categories() ([]tmdb.Category, error) {
	categories := make([]tmdb.Category, 0, len(c.Rows))
	for _, name := range c.Rows {
		cat, err := tmdb.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

// Load reads, parses and validates the configuration file.
func Load(path string) (*Config, error) {
	cfg, err := LoadWithoutValidation(path)
	if err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigError{Path: path, Errors: errs}
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file, applying
// environment overrides and defaults but skipping Validate.
func LoadWithoutValidation(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("environment overrides: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns a config holding only default values. It has no API key
// and does not pass Validate until one is set.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = tmdb.DefaultBaseURL
	}
	if c.TMDB.ImageBaseURL == "" {
		c.TMDB.ImageBaseURL = tmdb.DefaultImageBaseURL
	}
	if c.TMDB.PosterSize == "" {
		c.TMDB.PosterSize = tmdb.DefaultPosterSize
	}
	if c.TMDB.BackdropSize == "" {
		c.TMDB.BackdropSize = tmdb.DefaultBackdropSize
	}
	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8585
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.Session.Path == "" {
		c.Session.Path = "./data/marquee.db"
	}
	if len(c.Home.Rows) == 0 {
		for _, cat := range tmdb.HomeRows() {
			c.Home.Rows = append(c.Home.Rows, string(cat))
		}
	}
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces ${VAR} references with environment values.
// ${VAR:-default} falls back to default when VAR is unset or empty;
// ${VAR:?message} reports message when VAR is unset or empty. Unresolved
// references are left in place and returned in missing.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		name, op, arg := parts[1], parts[2], parts[3]
		value, ok := os.LookupEnv(name)

		switch op {
		case ":-":
			if value == "" {
				return arg
			}
			return value
		case ":?":
			if value == "" {
				missing = append(missing, name+": "+strings.TrimSpace(arg))
				return match
			}
			return value
		default:
			if !ok {
				missing = append(missing, name)
				return match
			}
			return value
		}
	})
	return result, missing
}
