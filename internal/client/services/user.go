package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/ruralportal/internal/client/api"
	"github.com/dmitrijs2005/ruralportal/internal/client/models"
	"github.com/dmitrijs2005/ruralportal/internal/client/session"
)

// UserService acts on the logged-in user's own account.
type UserService interface {
	Profile(ctx context.Context) (models.Profile, error)
	UpdateLocation(ctx context.Context, lat, lng float64) error
	RegisterPushToken(ctx context.Context, token string) error
	// ChangePassword clears the must-change-password flag on success.
	ChangePassword(ctx context.Context, current, next string) error
}

type userService struct {
	client  *api.Client
	session *session.Store
}

func NewUserService(client *api.Client, store *session.Store) UserService {
	return &userService{client: client, session: store}
}

// Profile refreshes the stored snapshot on success.
func (s *userService) Profile(ctx context.Context) (models.Profile, error) {
	p, err := api.Do[models.Profile](ctx, s.client, api.Request{
		Path:    "/users/profile",
		Context: "get profile",
	})
	if err != nil {
		return models.Profile{}, err
	}
	if err := s.session.SetProfile(ctx, p); err != nil {
		return p, fmt.Errorf("profile saving error: %w", err)
	}
	return p, nil
}

func (s *userService) UpdateLocation(ctx context.Context, lat, lng float64) error {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return fmt.Errorf("update location: coordinates out of range: %w", ErrInvalidArgument)
	}
	_, err := api.Do[models.Message](ctx, s.client, api.Request{
		Method:  http.MethodPost,
		Path:    "/user/location-update",
		Body:    models.Location{Latitude: lat, Longitude: lng},
		Context: "update location",
	})
	return err
}

func (s *userService) RegisterPushToken(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("register push token: %w", ErrInvalidArgument)
	}
	_, err := api.Do[models.Message](ctx, s.client, api.Request{
		Method:  http.MethodPost,
		Path:    "/user/fcm-token",
		Body:    map[string]string{"token": token},
		Context: "register push token",
	})
	if err != nil {
		return err
	}
	return s.session.SetPushToken(ctx, token)
}

func (s *userService) ChangePassword(ctx context.Context, current, next string) error {
	if current == "" || next == "" {
		return fmt.Errorf("change password: both passwords are required: %w", ErrInvalidArgument)
	}
	if current == next {
		return fmt.Errorf("change password: new password must differ: %w", ErrInvalidArgument)
	}
	_, err := api.Do[models.Message](ctx, s.client, api.Request{
		Method:  http.MethodPost,
		Path:    "/user/change-password",
		Body:    models.ChangePasswordRequest{CurrentPassword: current, NewPassword: next},
		Context: "change password",
	})
	if err != nil {
		return err
	}
	return s.session.ClearPasswordChange(ctx)
}
