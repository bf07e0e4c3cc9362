package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

type envConfig struct {
	APIURL              string        `env:"SR_API_URL"`
	Origin              string        `env:"SR_ORIGIN"`
	SupabaseURL         string        `env:"SR_SUPABASE_URL"`
	SupabaseAnonKey     string        `env:"SR_SUPABASE_ANON_KEY"`
	DBPath              string        `env:"SR_DB_PATH"`
	OnlineCheckInterval time.Duration `env:"SR_ONLINE_CHECK_INTERVAL,strict"`
	RequestTimeout      time.Duration `env:"SR_REQUEST_TIMEOUT,strict"`
	LogLevel            string        `env:"SR_LOG_LEVEL"`
	LogFormat           string        `env:"SR_LOG_FORMAT"`
	MetricsAddr         string        `env:"SR_METRICS_ADDR"`
}

// parseEnv overlays cfg with SR_* variables. Variables already set in the
// process win over the dotenv file.
func parseEnv(cfg *Config, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	var ec envConfig
	if err := envdecode.Decode(&ec); err != nil {
		if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return nil
		}
		return err
	}

	setString(&cfg.APIURL, ec.APIURL)
	setString(&cfg.Origin, ec.Origin)
	setString(&cfg.SupabaseURL, ec.SupabaseURL)
	setString(&cfg.SupabaseAnonKey, ec.SupabaseAnonKey)
	setString(&cfg.DBPath, ec.DBPath)
	setDuration(&cfg.OnlineCheckInterval, ec.OnlineCheckInterval)
	setDuration(&cfg.RequestTimeout, ec.RequestTimeout)
	setString(&cfg.LogLevel, ec.LogLevel)
	setString(&cfg.LogFormat, ec.LogFormat)
	setString(&cfg.MetricsAddr, ec.MetricsAddr)
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v time.Duration) {
	if v != 0 {
		*dst = v
	}
}
