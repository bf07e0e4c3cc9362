// Package migrations embeds the goose migrations for the client's local
// SQLite storage.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
