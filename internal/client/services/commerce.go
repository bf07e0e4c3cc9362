package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/ruralportal/internal/client/api"
	"github.com/dmitrijs2005/ruralportal/internal/client/models"
)

type CommerceService interface {
	List(ctx context.Context, page Page) ([]models.Commerce, error)
	// Quota falls back to models.OfflineQuota.
	Quota(ctx context.Context) (models.Quota, error)
	// DefaultPlan is premium when the free quota is full, otherwise free.
	DefaultPlan(ctx context.Context) (models.CommercePlan, models.Quota, error)
	Create(ctx context.Context, in models.CommerceInput) (models.Commerce, error)
	AdminCreate(ctx context.Context, in models.CommerceInput) (models.Commerce, error)
	Update(ctx context.Context, id string, in models.CommerceInput) (models.Commerce, error)
	Delete(ctx context.Context, id string) error
	Approve(ctx context.Context, id string) error
}

type commerceService struct {
	client *api.Client
}

func NewCommerceService(client *api.Client) CommerceService {
	return &commerceService{client: client}
}

func (s *commerceService) List(ctx context.Context, page Page) ([]models.Commerce, error) {
	return api.DoWithFallback(ctx, s.client, api.Request{
		Method:  http.MethodGet,
		Path:    "/comercios",
		Query:   page.query(),
		Context: "list commerces",
	}, emptyList[models.Commerce]())
}

func (s *commerceService) Quota(ctx context.Context) (models.Quota, error) {
	return api.DoWithFallback(ctx, s.client, api.Request{
		Method:  http.MethodGet,
		Path:    "/stats/quota",
		Context: "get quota",
	}, models.OfflineQuota)
}

func (s *commerceService) DefaultPlan(ctx context.Context) (models.CommercePlan, models.Quota, error) {
	q, err := s.Quota(ctx)
	if err != nil {
		return models.PlanFree, q, err
	}
	if q.IsFull {
		return models.PlanPremium, q, nil
	}
	return models.PlanFree, q, nil
}

// choosePlan fills in a missing plan and refuses a free plan the quota
// cannot take. The backend enforces the quota again on its side.
func (s *commerceService) choosePlan(ctx context.Context, in *models.CommerceInput) error {
	if in.Plan != "" && in.Plan != models.PlanFree {
		return nil
	}
	plan, q, err := s.DefaultPlan(ctx)
	if err != nil {
		return err
	}
	if in.Plan == "" {
		in.Plan = plan
		return nil
	}
	if q.IsFull {
		return fmt.Errorf("%w (%d/%d)", ErrQuotaFull, q.Used, q.Limit)
	}
	return nil
}

func validateCommerce(in models.CommerceInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("commerce name is required: %w", ErrInvalidArgument)
	}
	if in.BaseDiscount != nil && (*in.BaseDiscount < 0 || *in.BaseDiscount > 100) {
		return fmt.Errorf("discount must be between 0 and 100: %w", ErrInvalidArgument)
	}
	return nil
}

func (s *commerceService) create(ctx context.Context, path, opCtx string, in models.CommerceInput) (models.Commerce, error) {
	if err := validateCommerce(in); err != nil {
		return models.Commerce{}, err
	}
	if err := s.choosePlan(ctx, &in); err != nil {
		return models.Commerce{}, err
	}
	return api.Do[models.Commerce](ctx, s.client, api.Request{
		Method:  http.MethodPost,
		Path:    path,
		Body:    in,
		Context: opCtx,
	})
}

func (s *commerceService) Create(ctx context.Context, in models.CommerceInput) (models.Commerce, error) {
	return s.create(ctx, "/comercios", "create commerce", in)
}

// AdminCreate also provisions the commerce's login account.
func (s *commerceService) AdminCreate(ctx context.Context, in models.CommerceInput) (models.Commerce, error) {
	return s.create(ctx, "/admin/comercios", "create commerce", in)
}

func (s *commerceService) Update(ctx context.Context, id string, in models.CommerceInput) (models.Commerce, error) {
	pid, err := pathID(id)
	if err != nil {
		return models.Commerce{}, fmt.Errorf("update commerce: %w", err)
	}
	return api.Do[models.Commerce](ctx, s.client, api.Request{
		Method:  http.MethodPut,
		Path:    "/comercios/" + pid,
		Body:    in,
		Context: "update commerce",
	})
}

func (s *commerceService) Delete(ctx context.Context, id string) error {
	pid, err := pathID(id)
	if err != nil {
		return fmt.Errorf("delete commerce: %w", err)
	}
	_, err = api.Do[models.Message](ctx, s.client, api.Request{
		Method:  http.MethodDelete,
		Path:    "/comercios/" + pid,
		Context: "delete commerce",
	})
	return err
}

func (s *commerceService) Approve(ctx context.Context, id string) error {
	pid, err := pathID(id)
	if err != nil {
		return fmt.Errorf("approve commerce: %w", err)
	}
	_, err = api.Do[models.Message](ctx, s.client, api.Request{
		Method:  http.MethodPost,
		Path:    "/admin/comercios/" + pid + "/approve",
		Context: "approve commerce",
	})
	return err
}
