package config

import (
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/ruralportal/internal/client/api"
	"github.com/dmitrijs2005/ruralportal/internal/flagx"
	"github.com/dmitrijs2005/ruralportal/internal/logging"
)

// Config holds runtime settings for the portal CLI.
type Config struct {
	APIURL          string
	Origin          string
	SupabaseURL     string
	SupabaseAnonKey string
	DBPath          string

	OnlineCheckInterval time.Duration
	// RequestTimeout of zero leaves requests unbounded.
	RequestTimeout time.Duration

	LogLevel    string
	LogFormat   string
	MetricsAddr string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = api.DefaultBaseURL
	c.Origin = "cli"
	c.DBPath = "ruralportal.db"
	c.OnlineCheckInterval = 5 * time.Second
	c.RequestTimeout = 0
	c.LogLevel = "info"
	c.LogFormat = logging.FormatText
}

// Load builds a Config from defaults, environment, JSON and flags, in
// that order. args excludes the program name.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, flagx.EnvFilePath(args, ".env")); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := parseJSON(cfg, flagx.ConfigPath(args)); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load over os.Args. It panics on invalid configuration.
func LoadConfig() *Config {
	cfg, err := Load(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) Validate() error {
	if c.OnlineCheckInterval <= 0 {
		return fmt.Errorf("online check interval must be positive, got %s", c.OnlineCheckInterval)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative, got %s", c.RequestTimeout)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case logging.FormatText, logging.FormatJSON, logging.FormatZerolog:
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}
