// Package session holds the logged-in user's state: bearer token, role,
// the must-change-password flag and a profile snapshot. It is the only
// place the token lives; the API layer reads it from here on every call.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/ruralportal/internal/client/models"
	"github.com/dmitrijs2005/ruralportal/internal/client/repositories/storage"
)

const (
	keyToken               = "auth_token"
	keyRole                = "user_role"
	keyForcePasswordChange = "force_password_change"
	keyProfile             = "user_data"
	keyFCMToken            = "fcm_token"
)

var ErrNoSession = errors.New("not logged in")

// Session is a snapshot of what Store persists.
type Session struct {
	Token              string
	Role               models.Role
	MustChangePassword bool
	Profile            *models.Profile
}

// Store persists the session in a storage.Repository. It implements
// api.TokenSource.
type Store struct {
	repo storage.Repository
}

func NewStore(repo storage.Repository) *Store {
	return &Store{repo: repo}
}

// Token returns the current token, or "" when logged out.
func (s *Store) Token(ctx context.Context) (string, error) {
	v, _, err := s.repo.Get(ctx, keyToken)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return v, nil
}

// Role defaults to RoleCommon when none was stored.
func (s *Store) Role(ctx context.Context) (models.Role, error) {
	v, ok, err := s.repo.Get(ctx, keyRole)
	if err != nil {
		return "", fmt.Errorf("read role: %w", err)
	}
	if !ok || v == "" {
		return models.RoleCommon, nil
	}
	return models.Role(v), nil
}

func (s *Store) MustChangePassword(ctx context.Context) (bool, error) {
	v, _, err := s.repo.Get(ctx, keyForcePasswordChange)
	if err != nil {
		return false, fmt.Errorf("read password change flag: %w", err)
	}
	return v == "true", nil
}

// Profile returns the stored snapshot, or nil if there is none.
func (s *Store) Profile(ctx context.Context) (*models.Profile, error) {
	v, ok, err := s.repo.Get(ctx, keyProfile)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	if !ok || v == "" {
		return nil, nil
	}
	var p models.Profile
	if err := json.Unmarshal([]byte(v), &p); err != nil {
		return nil, fmt.Errorf("decode stored profile: %w", err)
	}
	return &p, nil
}

// Load returns the whole session, or ErrNoSession without a token.
func (s *Store) Load(ctx context.Context) (Session, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return Session{}, err
	}
	if token == "" {
		return Session{}, ErrNoSession
	}

	role, err := s.Role(ctx)
	if err != nil {
		return Session{}, err
	}
	force, err := s.MustChangePassword(ctx)
	if err != nil {
		return Session{}, err
	}
	profile, err := s.Profile(ctx)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, Role: role, MustChangePassword: force, Profile: profile}, nil
}

// Save replaces the stored session in one write.
func (s *Store) Save(ctx context.Context, sess Session) error {
	if sess.Token == "" {
		return fmt.Errorf("save session: %w", ErrNoSession)
	}

	values := map[string]string{
		keyToken: sess.Token,
		keyRole:  string(sess.Role),
	}
	if sess.MustChangePassword {
		values[keyForcePasswordChange] = "true"
	}
	if sess.Profile != nil {
		b, err := json.Marshal(sess.Profile)
		if err != nil {
			return fmt.Errorf("encode profile: %w", err)
		}
		values[keyProfile] = string(b)
	}

	if err := s.repo.Replace(ctx, []string{keyForcePasswordChange, keyProfile}, values); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// SetProfile refreshes the profile snapshot.
func (s *Store) SetProfile(ctx context.Context, p models.Profile) error {
	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	return s.repo.Set(ctx, keyProfile, string(b))
}

// ClearPasswordChange drops the must-change-password flag after a
// successful change.
func (s *Store) ClearPasswordChange(ctx context.Context) error {
	return s.repo.Delete(ctx, keyForcePasswordChange)
}

func (s *Store) SetPushToken(ctx context.Context, token string) error {
	return s.repo.Set(ctx, keyFCMToken, token)
}

// Invalidate logs out. The next request goes out without credentials.
func (s *Store) Invalidate(ctx context.Context) error {
	if err := s.repo.Delete(ctx, keyToken, keyRole, keyForcePasswordChange, keyProfile, keyFCMToken); err != nil {
		return fmt.Errorf("invalidate session: %w", err)
	}
	return nil
}
