package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/ruralportal/internal/flagx"
)

var knownFlags = []string{
	"-a", "-origin", "-i", "-timeout", "-db", "-log-level", "-log-format", "-metrics",
}

// parseFlags overlays cfg with the flags listed in doc.go. Other flags in
// args are ignored.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIURL, "a", cfg.APIURL, "backend address")
	fs.StringVar(&cfg.Origin, "origin", cfg.Origin, "client origin")
	interval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "request timeout, 0 for none")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "session database file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format")
	fs.StringVar(&cfg.MetricsAddr, "metrics", cfg.MetricsAddr, "metrics listen address")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.OnlineCheckInterval = time.Duration(*interval) * time.Second
		}
	})
	return nil
}
