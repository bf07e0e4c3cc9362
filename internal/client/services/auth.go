package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/ruralportal/internal/client/api"
	"github.com/dmitrijs2005/ruralportal/internal/client/models"
	"github.com/dmitrijs2005/ruralportal/internal/client/session"
)

// AuthService covers login, logout, public registration, membership card
// validation and the backend status probe.
type AuthService interface {
	// Login authenticates and persists the session. The returned response
	// carries the token, role and profile.
	Login(ctx context.Context, email, password string) (models.LoginResponse, error)
	Logout(ctx context.Context) error
	Register(ctx context.Context, in models.MemberCreate) error
	ValidateQR(ctx context.Context, memberID string) (models.QRValidation, error)
	Status(ctx context.Context) api.Status
}

type authService struct {
	client  *api.Client
	session *session.Store
}

func NewAuthService(client *api.Client, store *session.Store) AuthService {
	return &authService{client: client, session: store}
}

func (s *authService) Login(ctx context.Context, email, password string) (models.LoginResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return models.LoginResponse{}, fmt.Errorf("login: email and password are required: %w", ErrInvalidArgument)
	}

	resp, err := api.Do[models.LoginResponse](ctx, s.client, api.Request{
		Method:  http.MethodPost,
		Path:    "/auth/token",
		Form:    url.Values{"username": {email}, "password": {password}},
		Context: "login",
	})
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login error: %w", err)
	}
	if resp.AccessToken == "" {
		return models.LoginResponse{}, fmt.Errorf("login error: %w", ErrEmptyToken)
	}

	role := resp.Role
	if role == "" && resp.Profile != nil {
		role = resp.Profile.Role
	}
	if role == "" {
		role = models.RoleCommon
	}
	resp.Role = role

	if err := s.session.Save(ctx, session.Session{
		Token:              resp.AccessToken,
		Role:               role,
		MustChangePassword: resp.MustChangePassword(),
		Profile:            resp.Profile,
	}); err != nil {
		return models.LoginResponse{}, fmt.Errorf("session saving error: %w", err)
	}
	return resp, nil
}

func (s *authService) Logout(ctx context.Context) error {
	return s.session.Invalidate(ctx)
}

func (s *authService) Register(ctx context.Context, in models.MemberCreate) error {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.DNI = strings.TrimSpace(in.DNI)
	if in.Email == "" || in.DNI == "" || in.Password == "" {
		return fmt.Errorf("register: email, dni and password are required: %w", ErrInvalidArgument)
	}

	_, err := api.Do[models.Message](ctx, s.client, api.Request{
		Method:  http.MethodPost,
		Path:    "/auth/register",
		Body:    in,
		Context: "register member",
	})
	if err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	return nil
}

// ValidateQR has no offline value: showing a stale "valid" card at the
// gate would be wrong.
func (s *authService) ValidateQR(ctx context.Context, memberID string) (models.QRValidation, error) {
	id, err := pathID(memberID)
	if err != nil {
		return models.QRValidation{}, fmt.Errorf("validate qr: %w", err)
	}
	return api.Do[models.QRValidation](ctx, s.client, api.Request{
		Method:  http.MethodGet,
		Path:    "/qr/validate/" + id,
		Context: "validate membership card",
	})
}

func (s *authService) Status(ctx context.Context) api.Status {
	return s.client.CheckStatus(ctx)
}
