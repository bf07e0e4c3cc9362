package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/ruralportal/internal/client/api"
	"github.com/dmitrijs2005/ruralportal/internal/client/models"
)

// MyCommerceService is the self-service surface of a commerce account.
type MyCommerceService interface {
	Get(ctx context.Context) (models.Commerce, error)
	Update(ctx context.Context, in models.CommerceInput) (models.Commerce, error)
	Promotions(ctx context.Context) ([]models.Promotion, error)
	CreatePromotion(ctx context.Context, in models.PromotionInput) (models.Promotion, error)
	DeletePromotion(ctx context.Context, id string) error
	// ValidateMember checks a member card by DNI or member id.
	ValidateMember(ctx context.Context, dniOrID string) (models.MemberValidation, error)
}

type myCommerceService struct {
	client *api.Client
}

func NewMyCommerceService(client *api.Client) MyCommerceService {
	return &myCommerceService{client: client}
}

func (s *myCommerceService) Get(ctx context.Context) (models.Commerce, error) {
	return api.Do[models.Commerce](ctx, s.client, api.Request{
		Path:    "/my-commerce",
		Context: "get my commerce",
	})
}

func (s *myCommerceService) Update(ctx context.Context, in models.CommerceInput) (models.Commerce, error) {
	return api.Do[models.Commerce](ctx, s.client, api.Request{
		Method:  http.MethodPatch,
		Path:    "/my-commerce",
		Body:    in,
		Context: "update my commerce",
	})
}

func (s *myCommerceService) Promotions(ctx context.Context) ([]models.Promotion, error) {
	return api.Do[[]models.Promotion](ctx, s.client, api.Request{
		Path:    "/my-commerce/promos",
		Context: "list my promotions",
	})
}

func (s *myCommerceService) CreatePromotion(ctx context.Context, in models.PromotionInput) (models.Promotion, error) {
	if strings.TrimSpace(in.Title) == "" {
		return models.Promotion{}, fmt.Errorf("create promotion: title is required: %w", ErrInvalidArgument)
	}
	if in.DiscountPercent != nil && (*in.DiscountPercent < 0 || *in.DiscountPercent > 100) {
		return models.Promotion{}, fmt.Errorf("create promotion: discount must be between 0 and 100: %w", ErrInvalidArgument)
	}
	return api.Do[models.Promotion](ctx, s.client, api.Request{
		Method:  http.MethodPost,
		Path:    "/my-commerce/promos",
		Body:    in,
		Context: "create promotion",
	})
}

func (s *myCommerceService) DeletePromotion(ctx context.Context, id string) error {
	pid, err := pathID(id)
	if err != nil {
		return fmt.Errorf("delete promotion: %w", err)
	}
	_, err = api.Do[models.Message](ctx, s.client, api.Request{
		Method:  http.MethodDelete,
		Path:    "/my-commerce/promos/" + pid,
		Context: "delete promotion",
	})
	return err
}

func (s *myCommerceService) ValidateMember(ctx context.Context, dniOrID string) (models.MemberValidation, error) {
	pid, err := pathID(dniOrID)
	if err != nil {
		return models.MemberValidation{}, fmt.Errorf("validate member: %w", err)
	}
	return api.Do[models.MemberValidation](ctx, s.client, api.Request{
		Path:    "/my-commerce/validate-member/" + pid,
		Context: "validate member",
	})
}
