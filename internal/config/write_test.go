// internal/config/write_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "marquee", "config.toml")

	err := WriteDefault(path)
	require.NoError(t, err, "WriteDefault failed")

	content, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read written file")

	assert.Contains(t, string(content), "[tmdb]")
	assert.Contains(t, string(content), "[home]")
	assert.Contains(t, string(content), "${TMDB_API_KEY}")
}

func TestWriteDefault_LoadsWithKey(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "from-env")
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteDefault(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.TMDB.APIKey)
	assert.Len(t, cfg.Home.Rows, 8)
}

func TestDefaultTemplate_OnlyReferencesAPIKey(t *testing.T) {
	matches := envVarPattern.FindAllStringSubmatch(defaultConfig, -1)
	require.Len(t, matches, 1)
	assert.Equal(t, "TMDB_API_KEY", matches[0][1])
}

func TestWriteDefault_CreatesDir(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "nested", "deep", "config.toml")

	err := WriteDefault(path)
	require.NoError(t, err, "WriteDefault failed")

	_, err = os.Stat(path)
	assert.False(t, os.IsNotExist(err), "file was not created")
}

func TestConfig_Write(t *testing.T) {
	cfg := &Config{
		TMDB:   TMDBConfig{APIKey: "abc123", PosterSize: "w342"},
		Server: ServerConfig{Host: "127.0.0.1", Port: 9000},
		Home:   HomeConfig{Rows: []string{"horror", "tv"}},
	}

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, cfg.Write(path), "Write failed")

	loaded, err := LoadWithoutValidation(path)
	require.NoError(t, err)
	assert.Equal(t, "abc123", loaded.TMDB.APIKey)
	assert.Equal(t, 9000, loaded.Server.Port)
	assert.Equal(t, []string{"horror", "tv"}, loaded.Home.Rows)
}

func TestDefault_WriteThenLoad(t *testing.T) {
	cfg := Default()
	assert.NotEmpty(t, cfg.Validate(), "default config has no API key")

	cfg.TMDB.APIKey = "k"
	assert.Empty(t, cfg.Validate())

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, cfg.Write(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, *cfg, *loaded)
}
