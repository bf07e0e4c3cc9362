package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SR_ONLINE_CHECK_INTERVAL", "7s")
	t.Setenv("SR_METRICS_ADDR", ":9200")

	cfg := &Config{APIURL: "keep", OnlineCheckInterval: time.Second}
	require.NoError(t, parseEnv(cfg, ""))

	assert.Equal(t, "keep", cfg.APIURL)
	assert.Equal(t, 7*time.Second, cfg.OnlineCheckInterval)
	assert.Equal(t, ":9200", cfg.MetricsAddr)
}

func TestParseEnv_NothingSet(t *testing.T) {
	clearEnv(t)
	cfg := &Config{APIURL: "keep"}
	require.NoError(t, parseEnv(cfg, filepath.Join(t.TempDir(), "missing.env")))
	assert.Equal(t, "keep", cfg.APIURL)
}

func TestParseEnv_DotenvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that already exist, even empty.
	require.NoError(t, os.Unsetenv("SR_SUPABASE_ANON_KEY"))
	t.Cleanup(func() { _ = os.Unsetenv("SR_SUPABASE_ANON_KEY") })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SR_SUPABASE_ANON_KEY=anon-from-file\n"), 0o600))

	cfg := &Config{}
	require.NoError(t, parseEnv(cfg, path))
	assert.Equal(t, "anon-from-file", cfg.SupabaseAnonKey)
}

func TestParseEnv_BadDuration(t *testing.T) {
	for _, name := range []string{"SR_REQUEST_TIMEOUT", "SR_ONLINE_CHECK_INTERVAL"} {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(name, "later")
			cfg := &Config{}
			cfg.LoadDefaults()
			assert.Error(t, parseEnv(cfg, ""))
		})
	}
}

func TestLoad_ReportsBadEnvDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("SR_ONLINE_CHECK_INTERVAL", "abc")
	_, err := Load(nil)
	assert.ErrorContains(t, err, "environment")
}
