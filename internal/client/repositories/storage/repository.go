// Package storage is the client's local key/value store, the terminal
// counterpart of the browser's localStorage. Keys are short strings,
// values are text (JSON for structured snapshots).
package storage

import "context"

type Repository interface {
	// Get returns the value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// SetMany writes all pairs atomically.
	SetMany(ctx context.Context, values map[string]string) error
	// Delete removes the given keys; missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
	// Replace deletes del and writes set in one transaction.
	Replace(ctx context.Context, del []string, set map[string]string) error
}
