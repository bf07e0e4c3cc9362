package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/ruralportal/internal/client/api"
	"github.com/dmitrijs2005/ruralportal/internal/client/models"
	"github.com/dmitrijs2005/ruralportal/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_ChangePasswordClearsFlag(t *testing.T) {
	b := newBackend(t)
	ctx := context.Background()
	require.NoError(t, b.store.Save(ctx, session.Session{Token: "t", Role: models.RoleCommon, MustChangePassword: true}))

	var got models.ChangePasswordRequest
	b.router.Post("/user/change-password", func(w http.ResponseWriter, r *http.Request) {
		got = decodeBody[models.ChangePasswordRequest](t, r)
		writeJSON(w, http.StatusOK, map[string]any{"message": "ok"})
	})

	require.NoError(t, NewUserService(b.client, b.store).ChangePassword(ctx, "old", "new"))
	assert.Equal(t, models.ChangePasswordRequest{CurrentPassword: "old", NewPassword: "new"}, got)

	force, err := b.store.MustChangePassword(ctx)
	require.NoError(t, err)
	assert.False(t, force)
}

func TestUser_ChangePasswordFailureKeepsFlag(t *testing.T) {
	b := newBackend(t)
	ctx := context.Background()
	require.NoError(t, b.store.Save(ctx, session.Session{Token: "t", MustChangePassword: true}))
	b.router.Post("/user/change-password", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "Contraseña actual incorrecta"})
	})

	err := NewUserService(b.client, b.store).ChangePassword(ctx, "old", "new")
	require.ErrorIs(t, err, api.ErrServer)
	assert.EqualError(t, err, "Contraseña actual incorrecta")

	force, _ := b.store.MustChangePassword(ctx)
	assert.True(t, force)
}

func TestUser_ChangePasswordValidation(t *testing.T) {
	b := newBackend(t)
	svc := NewUserService(b.client, b.store)
	assert.ErrorIs(t, svc.ChangePassword(context.Background(), "", "x"), ErrInvalidArgument)
	assert.ErrorIs(t, svc.ChangePassword(context.Background(), "same", "same"), ErrInvalidArgument)
}

func TestUser_LocationAndPushToken(t *testing.T) {
	b := newBackend(t)
	login(t, b.store, "tok")

	var loc models.Location
	var push map[string]string
	b.router.Post("/user/location-update", func(w http.ResponseWriter, r *http.Request) {
		loc = decodeBody[models.Location](t, r)
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	})
	b.router.Post("/user/fcm-token", func(w http.ResponseWriter, r *http.Request) {
		push = decodeBody[map[string]string](t, r)
		writeJSON(w, http.StatusOK, map[string]any{"message": "ok"})
	})

	ctx := context.Background()
	svc := NewUserService(b.client, b.store)
	require.NoError(t, svc.UpdateLocation(ctx, -34.6, -58.4))
	assert.Equal(t, models.Location{Latitude: -34.6, Longitude: -58.4}, loc)

	require.NoError(t, svc.RegisterPushToken(ctx, "fcm-1"))
	assert.Equal(t, map[string]string{"token": "fcm-1"}, push)

	assert.ErrorIs(t, svc.UpdateLocation(ctx, 200, 0), ErrInvalidArgument)
	assert.ErrorIs(t, svc.RegisterPushToken(ctx, ""), ErrInvalidArgument)
}

func TestUser_WritesOffline(t *testing.T) {
	c, store := offline(t)
	svc := NewUserService(c, store)
	ctx := context.Background()
	assert.ErrorIs(t, svc.UpdateLocation(ctx, 1, 1), api.ErrUnavailable)
	assert.ErrorIs(t, svc.RegisterPushToken(ctx, "x"), api.ErrUnavailable)
	assert.ErrorIs(t, svc.ChangePassword(ctx, "a", "b"), api.ErrUnavailable)
	_, err := svc.Profile(ctx)
	assert.ErrorIs(t, err, api.ErrUnavailable)
}

func TestUser_ProfileRefreshesSnapshot(t *testing.T) {
	b := newBackend(t)
	login(t, b.store, "tok")
	b.router.Get("/users/profile", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": "u1", "nombre": "Ana", "apellido": "Ruiz"})
	})

	_, err := NewUserService(b.client, b.store).Profile(context.Background())
	require.NoError(t, err)
	p, err := b.store.Profile(context.Background())
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Ruiz, Ana", p.FullName())
}
