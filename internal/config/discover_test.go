package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStub(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("[server]\n"), 0o600))
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/srv/xdg")
	assert.Equal(t, "/srv/xdg/marquee/config.toml", DefaultPath())

	t.Setenv("XDG_CONFIG_HOME", "")
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "marquee", "config.toml"), DefaultPath())
}

func TestSearchPaths_EndsWithSystemConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/srv/xdg")
	assert.Equal(t, []string{"./config.toml", "/srv/xdg/marquee/config.toml", "/etc/marquee/config.toml"}, SearchPaths())
}

func TestDiscover(t *testing.T) {
	t.Run("env path wins", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		writeStub(t, filepath.Join(dir, "config.toml"))
		custom := filepath.Join(dir, "marqueed.toml")
		writeStub(t, custom)
		t.Setenv(PathEnv, custom)

		got, err := Discover()
		require.NoError(t, err)
		assert.Equal(t, custom, got)
	})

	t.Run("env path must exist", func(t *testing.T) {
		t.Setenv(PathEnv, filepath.Join(t.TempDir(), "gone.toml"))

		_, err := Discover()
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Contains(t, err.Error(), PathEnv)
	})

	t.Run("working directory before xdg", func(t *testing.T) {
		xdg := t.TempDir()
		writeStub(t, filepath.Join(xdg, "marquee", "config.toml"))
		t.Setenv(PathEnv, "")
		t.Setenv("XDG_CONFIG_HOME", xdg)
		t.Chdir(t.TempDir())
		writeStub(t, "config.toml")

		got, err := Discover()
		require.NoError(t, err)
		assert.Equal(t, "./config.toml", got)
	})

	t.Run("xdg config", func(t *testing.T) {
		xdg := t.TempDir()
		want := filepath.Join(xdg, "marquee", "config.toml")
		writeStub(t, want)
		t.Setenv(PathEnv, "")
		t.Setenv("XDG_CONFIG_HOME", xdg)
		t.Chdir(t.TempDir())

		got, err := Discover()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("directory is not a config", func(t *testing.T) {
		t.Setenv(PathEnv, "")
		t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "empty"))
		t.Chdir(t.TempDir())
		require.NoError(t, os.Mkdir("config.toml", 0o755))

		_, err := Discover()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config not found")
	})
}
