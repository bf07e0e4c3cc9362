package session

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/ruralportal/internal/client/migrations"
	"github.com/dmitrijs2005/ruralportal/internal/client/models"
	"github.com/dmitrijs2005/ruralportal/internal/client/repositories/storage"
	"github.com/dmitrijs2005/ruralportal/internal/dbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *Store {
	t.Helper()
	db, err := dbx.OpenSQLite(context.Background(), ":memory:", migrations.FS)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(storage.NewSQLiteRepository(db))
}

func stores(t *testing.T) map[string]*Store {
	return map[string]*Store{
		"memory": NewStore(storage.NewMemoryRepository()),
		"sqlite": newSQLiteStore(t),
	}
}

func TestStore_EmptySession(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			tok, err := s.Token(ctx)
			require.NoError(t, err)
			assert.Empty(t, tok)

			role, err := s.Role(ctx)
			require.NoError(t, err)
			assert.Equal(t, models.RoleCommon, role)

			_, err = s.Load(ctx)
			assert.ErrorIs(t, err, ErrNoSession)
		})
	}
}

func TestStore_SaveLoadInvalidate(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			profile := &models.Profile{ID: "u1", FirstName: "Ana", LastName: "Gómez", Role: models.RoleChamberAdmin}

			require.NoError(t, s.Save(ctx, Session{
				Token:              "tok-1",
				Role:               models.RoleChamberAdmin,
				MustChangePassword: true,
				Profile:            profile,
			}))

			got, err := s.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, "tok-1", got.Token)
			assert.Equal(t, models.RoleChamberAdmin, got.Role)
			assert.True(t, got.MustChangePassword)
			require.NotNil(t, got.Profile)
			assert.Equal(t, *profile, *got.Profile)

			require.NoError(t, s.ClearPasswordChange(ctx))
			force, err := s.MustChangePassword(ctx)
			require.NoError(t, err)
			assert.False(t, force)

			require.NoError(t, s.Invalidate(ctx))
			tok, err := s.Token(ctx)
			require.NoError(t, err)
			assert.Empty(t, tok)
			p, err := s.Profile(ctx)
			require.NoError(t, err)
			assert.Nil(t, p)
		})
	}
}

func TestStore_SaveReplacesPreviousFlags(t *testing.T) {
	s := NewStore(storage.NewMemoryRepository())
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, Session{Token: "a", Role: models.RoleCommon, MustChangePassword: true,
		Profile: &models.Profile{ID: "1"}}))
	require.NoError(t, s.Save(ctx, Session{Token: "b", Role: models.RoleCommercial}))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Session{Token: "b", Role: models.RoleCommercial}, got)
}

func TestStore_SaveWithoutToken(t *testing.T) {
	s := NewStore(storage.NewMemoryRepository())
	err := s.Save(context.Background(), Session{Role: models.RoleCommon})
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestStore_SetProfile(t *testing.T) {
	s := NewStore(storage.NewMemoryRepository())
	ctx := context.Background()
	require.NoError(t, s.SetProfile(ctx, models.Profile{ID: "7", Email: "x@example.com"}))

	p, err := s.Profile(ctx)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "x@example.com", p.Email)
}

type failingRepo struct {
	storage.Repository
}

func (failingRepo) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk error")
}

func TestStore_ReadErrors(t *testing.T) {
	s := NewStore(failingRepo{Repository: storage.NewMemoryRepository()})
	ctx := context.Background()

	_, err := s.Token(ctx)
	assert.Error(t, err)
	_, err = s.Role(ctx)
	assert.Error(t, err)
	_, err = s.MustChangePassword(ctx)
	assert.Error(t, err)
	_, err = s.Load(ctx)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSession)
}

func TestStore_CorruptProfile(t *testing.T) {
	repo := storage.NewMemoryRepository()
	require.NoError(t, repo.Set(context.Background(), keyProfile, "{not json"))
	_, err := NewStore(repo).Profile(context.Background())
	assert.Error(t, err)
}

type replaceFailsRepo struct {
	storage.Repository
}

func (replaceFailsRepo) Replace(context.Context, []string, map[string]string) error {
	return errors.New("disk full")
}

func TestStore_FailedSaveKeepsPreviousSession(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryRepository()
	require.NoError(t, NewStore(mem).Save(ctx, Session{Token: "old", Role: models.RoleCommon, MustChangePassword: true}))

	s := NewStore(replaceFailsRepo{Repository: mem})
	err := s.Save(ctx, Session{Token: "new", Role: models.RoleSuperAdmin})
	require.ErrorContains(t, err, "save session")

	sess, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "old", sess.Token)
	assert.Equal(t, models.RoleCommon, sess.Role)
	assert.True(t, sess.MustChangePassword)
}
