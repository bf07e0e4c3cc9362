package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/ruralportal/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent or
// empty fields leave the current value alone.
type JsonConfig struct {
	APIURL              string         `json:"api_url"`
	Origin              string         `json:"origin"`
	SupabaseURL         string         `json:"supabase_url"`
	SupabaseAnonKey     string         `json:"supabase_anon_key"`
	DBPath              *string        `json:"db_path"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	LogLevel            string         `json:"log_level"`
	LogFormat           string         `json:"log_format"`
	MetricsAddr         string         `json:"metrics_addr"`
}

func parseJSON(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	setString(&cfg.APIURL, jc.APIURL)
	setString(&cfg.Origin, jc.Origin)
	setString(&cfg.SupabaseURL, jc.SupabaseURL)
	setString(&cfg.SupabaseAnonKey, jc.SupabaseAnonKey)
	// An explicit "" selects the in-memory store.
	if jc.DBPath != nil {
		cfg.DBPath = *jc.DBPath
	}
	setDuration(&cfg.OnlineCheckInterval, jc.OnlineCheckInterval.Duration)
	setDuration(&cfg.RequestTimeout, jc.RequestTimeout.Duration)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.MetricsAddr, jc.MetricsAddr)
	return nil
}
