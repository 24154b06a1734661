package services

import (
	"context"

	"github.com/dmitrijs2005/vmis/internal/client/client"
	"github.com/dmitrijs2005/vmis/internal/client/session"
)

// DashboardService reads the per-user aggregate counts.
type DashboardService interface {
	Stats(ctx context.Context, sess session.Session) (*client.DashboardStats, error)
}

type dashboardService struct {
	api client.API
}

func NewDashboardService(api client.API) DashboardService {
	return &dashboardService{api: api}
}

func (d *dashboardService) Stats(ctx context.Context, sess session.Session) (*client.DashboardStats, error) {
	return d.api.Dashboard(ctx, sess)
}
