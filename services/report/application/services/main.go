package services

import (
	"github.com/ghuser/gudang/pkg/app"
	"github.com/ghuser/gudang/services/inventory/infrastructure/persistence/postgres"
)

// Services aggregates the report context's application services. Reports read
// the inventory tables directly through the inventory context's repository
// interfaces; this context never writes.
type Services struct {
	Reports   *ReportService
	Dashboard *DashboardService
}

// New wires the report services from shared infrastructure.
func New(a *app.Application) *Services {
	products := postgres.NewProductRepository(a.Db, a.EventBus)
	movements := postgres.NewMovementRepository(a.Db, a.EventBus)
	return &Services{
		Reports:   NewReportService(products, movements),
		Dashboard: NewDashboardService(products, movements),
	}
}
