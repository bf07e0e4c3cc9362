package services

import (
	"context"

	"github.com/dmitrijs2005/ruralportal/internal/client/api"
	"github.com/dmitrijs2005/ruralportal/internal/client/models"
)

type AdminService interface {
	Audit(ctx context.Context) ([]models.AuditEntry, error)
	// Dashboard falls back to a zero record.
	Dashboard(ctx context.Context) (models.DashboardStats, error)
}

type adminService struct {
	client *api.Client
}

func NewAdminService(client *api.Client) AdminService {
	return &adminService{client: client}
}

func (s *adminService) Audit(ctx context.Context) ([]models.AuditEntry, error) {
	return api.DoWithFallback(ctx, s.client, api.Request{
		Path:    "/auditoria",
		Context: "list audit entries",
	}, emptyList[models.AuditEntry]())
}

func (s *adminService) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	return api.DoWithFallback(ctx, s.client, api.Request{
		Path:    "/dashboard/stats",
		Context: "get dashboard stats",
	}, func() models.DashboardStats { return models.DashboardStats{} })
}
