package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/ruralportal/internal/client/api"
	"github.com/dmitrijs2005/ruralportal/internal/client/models"
	"github.com/dmitrijs2005/ruralportal/internal/logging"
)

// ProfileSource is a secondary read-only source of member profiles.
type ProfileSource interface {
	Profiles(ctx context.Context, limit, offset int) ([]models.Profile, error)
}

type MemberService interface {
	// List falls back to the secondary source and then to an empty list
	// when the backend is unreachable.
	List(ctx context.Context, page Page) ([]models.Profile, error)
	Create(ctx context.Context, in models.MemberCreate) (models.Profile, error)
	Approve(ctx context.Context, id string) error
	Update(ctx context.Context, id string, in models.MemberUpdate) (models.Profile, error)
	Delete(ctx context.Context, id string) error
}

type memberService struct {
	client    *api.Client
	secondary ProfileSource
	log       logging.Logger
}

// NewMemberService accepts a nil secondary source.
func NewMemberService(client *api.Client, secondary ProfileSource, log logging.Logger) MemberService {
	if log == nil {
		log = logging.Nop()
	}
	return &memberService{client: client, secondary: secondary, log: log}
}

func (s *memberService) List(ctx context.Context, page Page) ([]models.Profile, error) {
	page = page.normalized()
	return api.DoWithFallback(ctx, s.client, api.Request{
		Method:  http.MethodGet,
		Path:    "/socios",
		Query:   page.query(),
		Context: "list members",
	}, func() []models.Profile {
		return s.fromSecondary(ctx, page)
	})
}

func (s *memberService) fromSecondary(ctx context.Context, page Page) []models.Profile {
	if s.secondary == nil {
		return []models.Profile{}
	}
	out, err := s.secondary.Profiles(ctx, page.Limit, page.Offset)
	if err != nil {
		s.log.Warn(ctx, "secondary member source failed", "error", err)
		return []models.Profile{}
	}
	if out == nil {
		return []models.Profile{}
	}
	return out
}

func (s *memberService) Create(ctx context.Context, in models.MemberCreate) (models.Profile, error) {
	if in.Email == "" || in.DNI == "" {
		return models.Profile{}, fmt.Errorf("create member: email and dni are required: %w", ErrInvalidArgument)
	}
	return api.Do[models.Profile](ctx, s.client, api.Request{
		Method:  http.MethodPost,
		Path:    "/socios",
		Body:    in,
		Context: "create member",
	})
}

func (s *memberService) Approve(ctx context.Context, id string) error {
	pid, err := pathID(id)
	if err != nil {
		return fmt.Errorf("approve member: %w", err)
	}
	_, err = api.Do[models.Message](ctx, s.client, api.Request{
		Method:  http.MethodPost,
		Path:    "/socios/" + pid + "/aprobar",
		Context: "approve member",
	})
	return err
}

func (s *memberService) Update(ctx context.Context, id string, in models.MemberUpdate) (models.Profile, error) {
	pid, err := pathID(id)
	if err != nil {
		return models.Profile{}, fmt.Errorf("update member: %w", err)
	}
	return api.Do[models.Profile](ctx, s.client, api.Request{
		Method:  http.MethodPut,
		Path:    "/socios/" + pid,
		Body:    in,
		Context: "update member",
	})
}

func (s *memberService) Delete(ctx context.Context, id string) error {
	pid, err := pathID(id)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	_, err = api.Do[models.Message](ctx, s.client, api.Request{
		Method:  http.MethodDelete,
		Path:    "/socios/" + pid,
		Context: "delete member",
	})
	return err
}
