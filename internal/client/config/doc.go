// Package config loads runtime configuration for the portal CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables (SR_*), optionally seeded from a dotenv file
//     selected with -env (default ".env"; a missing file is ignored).
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string        backend address; "/api/v1" is appended when missing
//	-origin string   origin reported in connectivity diagnostics
//	-i int           online status check interval (seconds)
//	-timeout dur     per-request timeout, 0 for none
//	-db string       SQLite file for the session store, "" for memory
//	-log-level str   debug, info, warn or error
//	-log-format str  text, json or zerolog
//	-metrics string  listen address for /metrics, "" to disable
//
// # JSON schema
//
// Intervals use timex.Duration, so they can be strings like "3s" or
// integer nanoseconds:
//
//	{
//	  "api_url": "https://api.sociedadrural.example",
//	  "online_check_interval": "5s",
//	  "db_path": "portal.db"
//	}
package config
