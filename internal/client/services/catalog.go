package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/ruralportal/internal/client/api"
	"github.com/dmitrijs2005/ruralportal/internal/client/models"
)

// CatalogService reads the public listings and manages chambers.
type CatalogService interface {
	Promotions(ctx context.Context, page Page) ([]models.Promotion, error)
	Events(ctx context.Context, page Page) ([]models.Event, error)
	Municipalities(ctx context.Context) ([]models.Municipality, error)
	Chambers(ctx context.Context) ([]models.Chamber, error)
	CreateChamber(ctx context.Context, in models.ChamberInput) (models.Chamber, error)
	AssignCommerces(ctx context.Context, chamberID string, commerceIDs []string) error
}

type catalogService struct {
	client *api.Client
}

func NewCatalogService(client *api.Client) CatalogService {
	return &catalogService{client: client}
}

func (s *catalogService) Promotions(ctx context.Context, page Page) ([]models.Promotion, error) {
	return api.DoWithFallback(ctx, s.client, api.Request{
		Path:    "/promociones",
		Query:   page.query(),
		Context: "list promotions",
	}, emptyList[models.Promotion]())
}

func (s *catalogService) Events(ctx context.Context, page Page) ([]models.Event, error) {
	return api.DoWithFallback(ctx, s.client, api.Request{
		Path:    "/eventos",
		Query:   page.query(),
		Context: "list events",
	}, emptyList[models.Event]())
}

func (s *catalogService) Municipalities(ctx context.Context) ([]models.Municipality, error) {
	return api.DoWithFallback(ctx, s.client, api.Request{
		Path:    "/municipios",
		Context: "list municipalities",
	}, emptyList[models.Municipality]())
}

func (s *catalogService) Chambers(ctx context.Context) ([]models.Chamber, error) {
	return api.DoWithFallback(ctx, s.client, api.Request{
		Path:    "/camaras",
		Context: "list chambers",
	}, emptyList[models.Chamber]())
}

func (s *catalogService) CreateChamber(ctx context.Context, in models.ChamberInput) (models.Chamber, error) {
	if strings.TrimSpace(in.Name) == "" {
		return models.Chamber{}, fmt.Errorf("create chamber: name is required: %w", ErrInvalidArgument)
	}
	if in.FreeLimit < 0 {
		return models.Chamber{}, fmt.Errorf("create chamber: negative free limit: %w", ErrInvalidArgument)
	}
	return api.Do[models.Chamber](ctx, s.client, api.Request{
		Method:  http.MethodPost,
		Path:    "/admin/camaras",
		Body:    in,
		Context: "create chamber",
	})
}

func (s *catalogService) AssignCommerces(ctx context.Context, chamberID string, commerceIDs []string) error {
	pid, err := pathID(chamberID)
	if err != nil {
		return fmt.Errorf("assign commerces: %w", err)
	}
	if len(commerceIDs) == 0 {
		return fmt.Errorf("assign commerces: no commerce ids: %w", ErrInvalidArgument)
	}
	_, err = api.Do[models.Message](ctx, s.client, api.Request{
		Method:  http.MethodPost,
		Path:    "/admin/camaras/" + pid + "/asignar-comercios",
		Body:    map[string][]string{"comercios_ids": commerceIDs},
		Context: "assign commerces to chamber",
	})
	return err
}
