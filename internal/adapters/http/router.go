// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/character-service/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	characterHandler *handlers.CharacterHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside the /api prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", healthHandler.Ping)

		r.Get("/characters", characterHandler.ListCharacters)
		r.Post("/characters", characterHandler.CreateCharacter)
		r.Get("/characters/{id}", characterHandler.GetCharacter)
		r.Put("/characters/{id}", characterHandler.UpdateCharacter)
		r.Delete("/characters/{id}", characterHandler.DeleteCharacter)
	})

	return r
}
