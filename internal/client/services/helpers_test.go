package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/ruralportal/internal/client/api"
	"github.com/dmitrijs2005/ruralportal/internal/client/repositories/storage"
	"github.com/dmitrijs2005/ruralportal/internal/client/session"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backend is a fake portal API mounted under /api/v1.
type backend struct {
	router chi.Router
	srv    *httptest.Server
	store  *session.Store
	client *api.Client
}

func newBackend(t *testing.T) *backend {
	t.Helper()
	r := chi.NewRouter()
	root := chi.NewRouter()
	root.Mount("/api/v1", r)

	srv := httptest.NewServer(root)
	t.Cleanup(srv.Close)

	store := session.NewStore(storage.NewMemoryRepository())
	return &backend{
		router: r,
		srv:    srv,
		store:  store,
		client: api.New(srv.URL, store),
	}
}

// offline returns a client and store pointed at a closed server.
func offline(t *testing.T) (*api.Client, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	u := srv.URL
	srv.Close()
	store := session.NewStore(storage.NewMemoryRepository())
	return api.New(u, store, api.WithOrigin("http://portal.test")), store
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeBody[T any](t *testing.T, r *http.Request) T {
	t.Helper()
	var v T
	assert.NoError(t, json.NewDecoder(r.Body).Decode(&v))
	return v
}

func login(t *testing.T, s *session.Store, token string) {
	t.Helper()
	require.NoError(t, s.Save(context.Background(), session.Session{Token: token, Role: "superadmin"}))
}
