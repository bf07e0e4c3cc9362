// Package cli provides the interactive Sociedad Rural portal client.
//
// It wires configuration, the local session store, the API services and an
// interactive REPL. Typical flow: restore the saved session or prompt for
// credentials, start a background connectivity watcher, then execute user
// commands. Commands are filtered by the logged-in role.
//
// Key features:
//   - Login / Logout / Register, with a forced password change when the
//     backend asks for one
//   - Member, commerce, chamber and catalog listings that keep working
//     (empty or default data) while the backend is offline
//   - Quota-aware commerce creation
//   - Commerce self-service and member card validation
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
