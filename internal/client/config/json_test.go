package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJSON(t *testing.T) {
	dir := t.TempDir()

	t.Run("overlays present fields", func(t *testing.T) {
		path := writeTempJSON(t, dir, "full.json", map[string]any{
			"api_url":               "https://api.example/api/v1",
			"online_check_interval": "10s",
			"request_timeout":       float64(2 * time.Second),
			"db_path":               "",
			"metrics_addr":          "127.0.0.1:9100",
		})
		cfg := &Config{DBPath: "default.db", LogLevel: "info"}
		require.NoError(t, parseJSON(cfg, path))

		assert.Equal(t, "https://api.example/api/v1", cfg.APIURL)
		assert.Equal(t, 10*time.Second, cfg.OnlineCheckInterval)
		assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "", cfg.DBPath, "explicit empty db_path selects memory")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "127.0.0.1:9100", cfg.MetricsAddr)
	})

	t.Run("no path leaves config alone", func(t *testing.T) {
		cfg := &Config{APIURL: "defaults", OnlineCheckInterval: 42 * time.Second}
		require.NoError(t, parseJSON(cfg, ""))
		assert.Equal(t, "defaults", cfg.APIURL)
		assert.Equal(t, 42*time.Second, cfg.OnlineCheckInterval)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		assert.Error(t, parseJSON(&Config{}, bad))
	})

	t.Run("invalid duration", func(t *testing.T) {
		path := writeTempJSON(t, dir, "dur.json", map[string]any{"online_check_interval": "often"})
		assert.Error(t, parseJSON(&Config{}, path))
	})
}
