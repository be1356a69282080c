// internal/config/discover.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// PathEnv names a config file that overrides the search.
const PathEnv = "MARQUEE_CONFIG"

// DefaultPath is where `marquee init` writes a new config:
// $XDG_CONFIG_HOME/marquee/config.toml, with ~/.config standing in for an
// unset XDG_CONFIG_HOME.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./config.toml"
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "marquee", "config.toml")
}

// SearchPaths lists the files Discover tries, first match wins.
func SearchPaths() []string {
	return []string{"./config.toml", DefaultPath(), "/etc/marquee/config.toml"}
}

// Discover returns the config file marqueed loads. A path in MARQUEE_CONFIG
// must exist; without it the first regular file from SearchPaths is used.
func Discover() (string, error) {
	if p := os.Getenv(PathEnv); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("%s=%s: %w", PathEnv, p, err)
		}
		return p, nil
	}

	candidates := SearchPaths()
	if i := slices.IndexFunc(candidates, isRegularFile); i >= 0 {
		return candidates[i], nil
	}
	return "", fmt.Errorf("config not found, checked: %s", strings.Join(candidates, ", "))
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
