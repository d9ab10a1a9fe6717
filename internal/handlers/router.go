package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/vango-dev/vango-ui/internal/assets"
	"github.com/vango-dev/vango-ui/internal/middleware"
)

// Router wires the handlers and the global middleware.
func (h *Handlers) Router() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(h.logger))
	r.Use(middleware.Recovery(h.logger))
	r.Use(middleware.Metrics(h.metrics))

	// Static files
	r.Handle(assets.URLPrefix+"*", assets.Handler())

	r.Get("/health", h.Health)
	r.Get("/metrics", h.Metrics)
	r.Get("/", h.Home)

	if h.accounts != nil {
		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(h.accounts.Sessions, h.accounts.Tokens))

			// Public routes
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
			r.Post("/logout", h.Logout)

			// Protected routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)

				r.Get("/me", h.Me)
				r.Get("/users", h.ListUsers)
				r.Post("/users", h.CreateUser)
			})
		})
	}

	return r
}
