package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Health check (no auth required)
		r.Get("/health", s.handleHealth)

		// System metrics (no auth required for basic monitoring)
		r.Get("/metrics", s.handleMetrics)

		// Auth endpoints (no auth required)
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)

			// WS ticket requires authentication - user must be logged in to request a ticket
			r.Post("/auth/ws-ticket", s.handleWSTicket)

			// Sensor history
			r.Get("/sensors/{type}", s.handleListReadings)

			// Door endpoints
			r.Route("/door", func(r chi.Router) {
				r.Get("/", s.handleGetDoor)
				r.Post("/", s.handleToggleDoor)
				r.Post("/access", s.handleDoorAccess)
			})

			// Light endpoints
			r.Route("/light", func(r chi.Router) {
				r.Get("/", s.handleGetLight)
				r.Post("/", s.handleToggleLight)
			})

			// Admin endpoints
			r.Group(func(r chi.Router) {
				r.Use(s.requireAdmin)
				r.Post("/admin/credentials", s.handleCreateCredential)
				r.Get("/admin/credentials", s.handleListCredentials)
			})
		})

		// WebSocket upgrade authenticates via single-use ticket in the query
		// string; browser WebSocket clients cannot set an Authorization header.
		r.Get("/ws", s.handleWebSocket)
	})

	return r
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
	})
}
