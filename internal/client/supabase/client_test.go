package supabase

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresConfig(t *testing.T) {
	_, err := New(Config{URL: "https://x.supabase.co"})
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = New(Config{APIKey: "k"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestProfiles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/profiles", r.URL.Path)
		assert.Equal(t, "anon", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon", r.Header.Get("Authorization"))
		q := r.URL.Query()
		assert.Equal(t, "*", q.Get("select"))
		assert.False(t, q.Has("order"))
		assert.Equal(t, "50", q.Get("limit"))
		assert.Equal(t, "100", q.Get("offset"))
		_, _ = io.WriteString(w, `[{"id":"1","nombre":"Luis","apellido":"Alvarez","rol":"comun","estado":"activo"}]`)
	}))
	defer srv.Close()

	c, err := New(Config{URL: srv.URL + "/", APIKey: "anon"})
	require.NoError(t, err)

	got, err := c.Profiles(context.Background(), 50, 100)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Alvarez, Luis", got[0].FullName())
}

func TestProfiles_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"message":"Invalid API key"}`)
	}))
	defer srv.Close()

	c, err := New(Config{URL: srv.URL, APIKey: "bad"})
	require.NoError(t, err)

	_, err = c.Profiles(context.Background(), 10, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestProfiles_NullBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `null`)
	}))
	defer srv.Close()

	c, err := New(Config{URL: srv.URL, APIKey: "k"})
	require.NoError(t, err)
	got, err := c.Profiles(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
