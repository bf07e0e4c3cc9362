package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/ruralportal/internal/client/api"
	"github.com/dmitrijs2005/ruralportal/internal/client/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfiles struct {
	calls         int
	limit, offset int
	ret           []models.Profile
	err           error
}

func (f *fakeProfiles) Profiles(_ context.Context, limit, offset int) ([]models.Profile, error) {
	f.calls++
	f.limit, f.offset = limit, offset
	return f.ret, f.err
}

func TestMembers_List(t *testing.T) {
	b := newBackend(t)
	login(t, b.store, "tok")
	b.router.Get("/socios", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		assert.Equal(t, "0", r.URL.Query().Get("offset"))
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": "1", "nombre": "Ana", "apellido": "Alvarez", "dni": "1", "estado": "activo", "is_moroso": true},
		})
	})

	secondary := &fakeProfiles{}
	got, err := NewMemberService(b.client, secondary, nil).List(context.Background(), Page{})
	require.NoError(t, err)

	want := []models.Profile{{ID: "1", FirstName: "Ana", LastName: "Alvarez", DNI: "1", Status: models.StatusActive, Delinquent: true}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("members mismatch (-want +got):\n%s", diff)
	}
	assert.Zero(t, secondary.calls)
}

func TestMembers_ListOfflineUsesSecondary(t *testing.T) {
	c, _ := offline(t)
	secondary := &fakeProfiles{ret: []models.Profile{{ID: "s1", LastName: "Suárez"}}}

	got, err := NewMemberService(c, secondary, nil).List(context.Background(), Page{Limit: 20, Offset: 40})
	require.NoError(t, err)
	assert.Equal(t, secondary.ret, got)
	assert.Equal(t, 1, secondary.calls)
	assert.Equal(t, 20, secondary.limit)
	assert.Equal(t, 40, secondary.offset)
}

func TestMembers_ListOfflineSecondaryFails(t *testing.T) {
	c, _ := offline(t)
	secondary := &fakeProfiles{err: errors.New("supabase down")}

	got, err := NewMemberService(c, secondary, nil).List(context.Background(), Page{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMembers_ListOfflineNoSecondary(t *testing.T) {
	c, _ := offline(t)
	got, err := NewMemberService(c, nil, nil).List(context.Background(), Page{})
	require.NoError(t, err)
	assert.Equal(t, []models.Profile{}, got)
}

func TestMembers_ListForbiddenSkipsSecondary(t *testing.T) {
	b := newBackend(t)
	b.router.Get("/socios", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, map[string]any{"detail": "Requiere privilegios de administrador"})
	})
	secondary := &fakeProfiles{}

	_, err := NewMemberService(b.client, secondary, nil).List(context.Background(), Page{})
	assert.ErrorIs(t, err, api.ErrUnauthorized)
	assert.Zero(t, secondary.calls)
}

func TestMembers_UpdateForbidden(t *testing.T) {
	b := newBackend(t)
	login(t, b.store, "tok")
	b.router.Put("/socios/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	name := "Nuevo"
	_, err := NewMemberService(b.client, nil, nil).Update(context.Background(), "42", models.MemberUpdate{FirstName: &name})
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrUnauthorized)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
}

func TestMembers_Writes(t *testing.T) {
	b := newBackend(t)
	login(t, b.store, "tok")

	var calls []string
	b.router.Post("/socios", func(w http.ResponseWriter, r *http.Request) {
		in := decodeBody[models.MemberCreate](t, r)
		calls = append(calls, "create:"+in.DNI)
		writeJSON(w, http.StatusOK, map[string]any{"id": "n1", "dni": in.DNI, "estado": "pendiente"})
	})
	b.router.Post("/socios/{id}/aprobar", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "approve:"+chi.URLParam(r, "id"))
		writeJSON(w, http.StatusOK, map[string]any{"message": "Socio aprobado"})
	})
	b.router.Put("/socios/{id}", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody[map[string]any](t, r)
		assert.Equal(t, map[string]any{"is_moroso": true}, body, "nil fields must be omitted")
		calls = append(calls, "update:"+chi.URLParam(r, "id"))
		writeJSON(w, http.StatusOK, map[string]any{"id": chi.URLParam(r, "id"), "is_moroso": true})
	})
	b.router.Delete("/socios/{id}", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "delete:"+chi.URLParam(r, "id"))
		writeJSON(w, http.StatusOK, map[string]any{"message": "ok"})
	})

	ctx := context.Background()
	svc := NewMemberService(b.client, nil, nil)

	p, err := svc.Create(ctx, models.MemberCreate{DNI: "20333444", Email: "x@y.z", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, p.Status)

	require.NoError(t, svc.Approve(ctx, "n1"))

	moroso := true
	p, err = svc.Update(ctx, "n1", models.MemberUpdate{Delinquent: &moroso})
	require.NoError(t, err)
	assert.True(t, p.Delinquent)

	require.NoError(t, svc.Delete(ctx, "n1"))

	assert.Equal(t, []string{"create:20333444", "approve:n1", "update:n1", "delete:n1"}, calls)
}

func TestMembers_WritesOfflineNeverFallBack(t *testing.T) {
	c, _ := offline(t)
	svc := NewMemberService(c, &fakeProfiles{}, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.MemberCreate{DNI: "1", Email: "a@b.c"})
	assert.ErrorIs(t, err, api.ErrUnavailable)
	assert.ErrorIs(t, svc.Approve(ctx, "1"), api.ErrUnavailable)
	_, err = svc.Update(ctx, "1", models.MemberUpdate{})
	assert.ErrorIs(t, err, api.ErrUnavailable)
	assert.ErrorIs(t, svc.Delete(ctx, "1"), api.ErrUnavailable)
}

func TestMembers_InvalidIDs(t *testing.T) {
	svc := NewMemberService(api.New("http://unused", nil), nil, nil)
	ctx := context.Background()
	assert.ErrorIs(t, svc.Approve(ctx, ""), ErrInvalidArgument)
	assert.ErrorIs(t, svc.Delete(ctx, " "), ErrInvalidArgument)
	_, err := svc.Update(ctx, "", models.MemberUpdate{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = svc.Create(ctx, models.MemberCreate{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
