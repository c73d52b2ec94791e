package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/gudang/pkg/app"
	"github.com/ghuser/gudang/services/inventory/application/handlers"
	appsvcs "github.com/ghuser/gudang/services/inventory/application/services"
)

// InventoryRoutes registers product and movement endpoints on the provided
// chi router.
func InventoryRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Post("/", handlers.NewPostProductHandler(svcs).Execute)
			r.Get("/", handlers.NewGetProductsHandler(svcs).Execute)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handlers.NewGetProductHandler(svcs).Execute)
				r.Put("/", handlers.NewPutProductHandler(svcs).Execute)
				r.Delete("/", handlers.NewDeleteProductHandler(svcs).Execute)
			})
		})
		r.Route("/movements", func(r chi.Router) {
			r.Get("/", handlers.NewGetMovementsHandler(svcs).Execute)
		})
	})
}
