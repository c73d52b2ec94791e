package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/gudang/pkg/app"
	"github.com/ghuser/gudang/pkg/auth"
	"github.com/ghuser/gudang/services/account/application/handlers"
	appsvcs "github.com/ghuser/gudang/services/account/application/services"
)

// AccountRoutes registers authentication endpoints on the provided chi
// router. Register, login, and logout are public; /auth/me requires a
// session.
func AccountRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handlers.NewPostRegisterHandler(svcs).Execute)
		r.Post("/login", handlers.NewPostLoginHandler(svcs, a.SessionStore).Execute)
		r.Post("/logout", handlers.NewPostLogoutHandler(a.SessionStore).Execute)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(a.SessionStore, a.Logger))
			r.Get("/me", handlers.NewGetMeHandler(svcs).Execute)
		})
	})
}
