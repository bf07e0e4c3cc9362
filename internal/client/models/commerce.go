package models

type CommercePlan string

const (
	PlanFree    CommercePlan = "gratuito"
	PlanPremium CommercePlan = "premium"
)

// Commerce is a partner business offering member discounts.
type Commerce struct {
	ID             string       `json:"id"`
	Name           string       `json:"nombre"`
	MunicipalityID string       `json:"municipio_id,omitempty"`
	ChamberID      string       `json:"camara_id,omitempty"`
	Address        string       `json:"direccion"`
	Phone          string       `json:"telefono"`
	Email          string       `json:"email"`
	Lat            float64      `json:"lat,omitempty"`
	Lng            float64      `json:"lng,omitempty"`
	BaseDiscount   int          `json:"descuento_base"`
	Category       string       `json:"rubro"`
	Plan           CommercePlan `json:"tipo_plan"`
	Status         Status       `json:"estado"`
	UserID         string       `json:"user_id,omitempty"`
	Subcategory    string       `json:"categoria,omitempty"`
	CUIT           string       `json:"cuit,omitempty"`
	Neighborhood   string       `json:"barrio,omitempty"`
	Province       string       `json:"provincia,omitempty"`
	Description    string       `json:"descripcion,omitempty"`
	LogoURL        string       `json:"logo_url,omitempty"`
}

// CommerceInput is used for creation and partial updates; zero values are
// omitted from the request body.
type CommerceInput struct {
	Name           string       `json:"nombre,omitempty"`
	Category       string       `json:"rubro,omitempty"`
	Address        string       `json:"direccion,omitempty"`
	Phone          string       `json:"telefono,omitempty"`
	Email          string       `json:"email,omitempty"`
	BaseDiscount   *int         `json:"descuento_base,omitempty"`
	MunicipalityID string       `json:"municipio_id,omitempty"`
	Plan           CommercePlan `json:"tipo_plan,omitempty"`
	Status         Status       `json:"estado,omitempty"`
	ChamberID      string       `json:"camara_id,omitempty"`
	Description    string       `json:"descripcion,omitempty"`
	LogoURL        string       `json:"logo_url,omitempty"`
}

// Quota is the free-tier commerce usage of a chamber.
type Quota struct {
	ChamberName string `json:"camara_nombre,omitempty"`
	Used        int    `json:"used"`
	Limit       int    `json:"limit"`
	Percent     int    `json:"percent"`
	IsFull      bool   `json:"is_full"`
}

// DefaultQuotaLimit is the free-tier limit assumed when the backend
// cannot be reached.
const DefaultQuotaLimit = 10

// OfflineQuota is the quota shown while the backend is unreachable.
func OfflineQuota() Quota {
	return Quota{Used: 0, Limit: DefaultQuotaLimit, Percent: 0, IsFull: false}
}

// Promotion is a discount campaign published by a commerce.
type Promotion struct {
	ID              string `json:"id"`
	CommerceID      string `json:"comercio_id"`
	Title           string `json:"titulo"`
	Description     string `json:"descripcion,omitempty"`
	ImageURL        string `json:"imagen_url,omitempty"`
	StartsAt        string `json:"fecha_inicio,omitempty"`
	EndsAt          string `json:"fecha_fin,omitempty"`
	Status          Status `json:"estado"`
	DiscountPercent *int   `json:"porcentaje_descuento,omitempty"`
	CommerceName    string `json:"comercio_nombre,omitempty"`
}

// PromotionInput is the body for a commerce creating its own promotion.
type PromotionInput struct {
	Title           string `json:"titulo"`
	Description     string `json:"descripcion,omitempty"`
	ImageURL        string `json:"imagen_url,omitempty"`
	StartsAt        string `json:"fecha_desde,omitempty"`
	EndsAt          string `json:"fecha_hasta,omitempty"`
	DiscountPercent *int   `json:"porcentaje_descuento,omitempty"`
}
