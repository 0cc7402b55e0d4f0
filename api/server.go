/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  Chi was chosen for:
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the dashboard

ROUTE GROUPS:
  /api/settlements/*  Settlement calculations
  /api/couriers/*     Roster management
  /api/metrics        Warehouse activity feed
  /api/targets        Per-day target table

SECURITY NOTE:
  No authentication middleware currently. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Settlement routes
		r.Route("/settlements", func(r chi.Router) {
			r.Post("/calculate", h.CalculateSettlements)
			r.Get("/categories", h.ListCategories)
		})

		// Roster routes
		r.Route("/couriers", func(r chi.Router) {
			r.Get("/", h.ListCouriers)
			r.Post("/", h.CreateCourier)
			r.Get("/{id}", h.GetCourier)
		})

		// Warehouse feed routes
		r.Post("/metrics", h.RecordMetric)
		r.Put("/targets", h.SetTargets)
	})

	return r
}
