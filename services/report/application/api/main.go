package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/gudang/pkg/app"
	"github.com/ghuser/gudang/services/report/application/handlers"
	appsvcs "github.com/ghuser/gudang/services/report/application/services"
)

// ReportRoutes registers dashboard and report endpoints on the provided chi
// router.
func ReportRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Get("/dashboard", handlers.NewGetDashboardHandler(svcs).Execute)
		r.Route("/reports", func(r chi.Router) {
			r.Get("/stock.csv", handlers.NewGetStockCSVHandler(svcs).Execute)
			r.Get("/history.csv", handlers.NewGetHistoryCSVHandler(svcs).Execute)
			r.Post("/stock/snapshots", handlers.NewPostStockSnapshotHandler(a.TemporalClient).Execute)
		})
	})
}
