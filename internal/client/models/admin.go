package models

type AuditEntry struct {
	ID        string `json:"id"`
	UserID    string `json:"usuario_id"`
	UserName  string `json:"usuario_nombre"`
	Action    string `json:"accion"`
	Detail    string `json:"detalle"`
	Timestamp string `json:"timestamp"`
	IP        string `json:"ip"`
}

// DashboardStats backs the admin dashboard counters. The zero value is
// what the dashboard shows while offline.
type DashboardStats struct {
	ActiveMembers    int     `json:"sociosActivos"`
	PendingMembers   int     `json:"sociosPendientes"`
	MonthlyRevenue   float64 `json:"recaudacionMensual"`
	PartnerCommerces int     `json:"comerciosAdheridos"`
}
