package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/ruralportal/internal/client/api"
	"github.com/dmitrijs2005/ruralportal/internal/client/models"
)

type PaymentService interface {
	// CreatePreference opens a checkout for one unit of the given item.
	CreatePreference(ctx context.Context, title string, unitPrice float64, paymentType string) (models.PaymentPreference, error)
}

type paymentService struct {
	client *api.Client
}

func NewPaymentService(client *api.Client) PaymentService {
	return &paymentService{client: client}
}

func (s *paymentService) CreatePreference(ctx context.Context, title string, unitPrice float64, paymentType string) (models.PaymentPreference, error) {
	title = strings.TrimSpace(title)
	if title == "" || unitPrice <= 0 {
		return models.PaymentPreference{}, fmt.Errorf("payment: title and a positive price are required: %w", ErrInvalidArgument)
	}
	if paymentType == "" {
		paymentType = models.PaymentTypeFee
	}
	return api.Do[models.PaymentPreference](ctx, s.client, api.Request{
		Method: http.MethodPost,
		Path:   "/payments/preference",
		Body: models.PaymentPreferenceRequest{
			Title:     title,
			UnitPrice: unitPrice,
			Quantity:  1,
			Type:      paymentType,
		},
		Context: "create payment preference",
	})
}
