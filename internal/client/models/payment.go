package models

const (
	PaymentTypeFee             = "cuota"
	PaymentTypePremiumCommerce = "comercio_premium"
)

type PaymentPreferenceRequest struct {
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Type      string  `json:"type"`
}

// PaymentPreference carries the processor checkout links.
type PaymentPreference struct {
	PreferenceID     string `json:"preference_id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point,omitempty"`
}
