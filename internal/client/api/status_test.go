package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckStatus(t *testing.T) {
	t.Run("online", func(t *testing.T) {
		srv := statusServer(t, http.StatusOK, `{"status":"ok"}`)
		got := New(srv.URL, nil).CheckStatus(context.Background())
		assert.Equal(t, Status{Online: true, Mode: ModeOnline}, got)
	})

	t.Run("unreachable", func(t *testing.T) {
		got := New(unreachableURL(t), nil).CheckStatus(context.Background())
		assert.Equal(t, Status{Online: false, Mode: ModeOffline}, got)
	})

	t.Run("server error", func(t *testing.T) {
		srv := statusServer(t, http.StatusServiceUnavailable, ``)
		got := New(srv.URL, nil).CheckStatus(context.Background())
		assert.False(t, got.Online)
		assert.Equal(t, ModeOffline, got.Mode)
	})

	t.Run("canceled", func(t *testing.T) {
		srv := statusServer(t, http.StatusOK, `{}`)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		got := New(srv.URL, nil).CheckStatus(ctx)
		assert.False(t, got.Online)
	})
}
