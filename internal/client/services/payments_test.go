package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/ruralportal/internal/client/api"
	"github.com/dmitrijs2005/ruralportal/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayments_CreatePreference(t *testing.T) {
	b := newBackend(t)
	login(t, b.store, "tok")

	var got models.PaymentPreferenceRequest
	b.router.Post("/payments/preference", func(w http.ResponseWriter, r *http.Request) {
		got = decodeBody[models.PaymentPreferenceRequest](t, r)
		writeJSON(w, http.StatusOK, map[string]any{
			"preference_id": "pref-1", "init_point": "https://pay.example/1", "sandbox_init_point": "https://sandbox.example/1",
		})
	})

	pref, err := NewPaymentService(b.client).CreatePreference(context.Background(), "Cuota social", 5000, "")
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/1", pref.InitPoint)
	assert.Equal(t, models.PaymentPreferenceRequest{Title: "Cuota social", UnitPrice: 5000, Quantity: 1, Type: models.PaymentTypeFee}, got)
}

func TestPayments_Validation(t *testing.T) {
	svc := NewPaymentService(api.New("http://unused", nil))
	_, err := svc.CreatePreference(context.Background(), "", 10, "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = svc.CreatePreference(context.Background(), "x", 0, "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPayments_OfflineIsError(t *testing.T) {
	c, _ := offline(t)
	_, err := NewPaymentService(c).CreatePreference(context.Background(), "Cuota", 1, models.PaymentTypeFee)
	assert.ErrorIs(t, err, api.ErrUnavailable)
}
