// Package models holds the DTOs exchanged with the Sociedad Rural backend.
// JSON field names follow the backend's wire format; the client passes the
// records through without validating or reshaping them.
package models

type Role string

const (
	RoleCommon       Role = "comun"
	RoleProfessional Role = "profesional"
	RoleCommercial   Role = "comercial"
	RoleChamberAdmin Role = "admin_camara"
	RoleSuperAdmin   Role = "superadmin"

	// Upper-case aliases still emitted by older backend builds.
	RoleLegacyMember     Role = "SOCIO"
	RoleLegacyCommerce   Role = "COMERCIO"
	RoleLegacyChamber    Role = "CAMARA_COMERCIO"
	RoleLegacySuperAdmin Role = "SUPERADMIN"
)

// IsAdmin reports whether the role can use the admin dashboard.
func (r Role) IsAdmin() bool {
	switch r {
	case RoleChamberAdmin, RoleSuperAdmin, RoleLegacyChamber, RoleLegacySuperAdmin:
		return true
	}
	return false
}

// IsCommerce reports whether the role manages its own commerce.
func (r Role) IsCommerce() bool {
	return r == RoleCommercial || r == RoleLegacyCommerce
}

type Status string

const (
	StatusActive   Status = "activo"
	StatusPending  Status = "pendiente"
	StatusInactive Status = "inactivo"
)

// Profile is a member record.
type Profile struct {
	ID         string `json:"id"`
	DNI        string `json:"dni"`
	FirstName  string `json:"nombre"`
	LastName   string `json:"apellido"`
	Email      string `json:"email"`
	Phone      string `json:"telefono,omitempty"`
	Address    string `json:"domicilio,omitempty"`
	City       string `json:"ciudad,omitempty"`
	Province   string `json:"provincia,omitempty"`
	Role       Role   `json:"rol"`
	Status     Status `json:"estado"`
	Delinquent bool   `json:"is_moroso"`
	ChamberID  string `json:"camara_id,omitempty"`
	CommerceID string `json:"comercio_id,omitempty"`
	JoinedAt   string `json:"fecha_alta,omitempty"`
	CUIT       string `json:"cuit,omitempty"`
	IsActive   *bool  `json:"is_active,omitempty"`
}

// FullName renders "Apellido, Nombre".
func (p Profile) FullName() string {
	switch {
	case p.LastName == "":
		return p.FirstName
	case p.FirstName == "":
		return p.LastName
	}
	return p.LastName + ", " + p.FirstName
}

// MemberCreate is the body of both the public registration and the admin
// member creation endpoints.
type MemberCreate struct {
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	DNI       string `json:"dni"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      Role   `json:"rol,omitempty"`
	ChamberID string `json:"camara_id,omitempty"`
}

// MemberUpdate is a partial update; nil fields are left untouched.
type MemberUpdate struct {
	FirstName  *string `json:"nombre,omitempty"`
	LastName   *string `json:"apellido,omitempty"`
	Role       *Role   `json:"rol,omitempty"`
	Status     *Status `json:"estado,omitempty"`
	Delinquent *bool   `json:"is_moroso,omitempty"`
	Phone      *string `json:"telefono,omitempty"`
	City       *string `json:"ciudad,omitempty"`
	Province   *string `json:"provincia,omitempty"`
	DNI        *string `json:"dni,omitempty"`
}

// QRValidation is the result of scanning a digital membership card.
type QRValidation struct {
	Valid     bool    `json:"valid"`
	Member    Profile `json:"socio"`
	Timestamp string  `json:"timestamp"`
}

// MemberValidation is what a commerce sees when it checks a member's card.
type MemberValidation struct {
	Valid   bool     `json:"valid"`
	Member  *Profile `json:"socio,omitempty"`
	Message string   `json:"message,omitempty"`
}
