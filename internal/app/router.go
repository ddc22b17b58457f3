package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/worklisten-backend/internal/config"
	"github.com/heartmarshall/worklisten-backend/internal/transport/middleware"
	"github.com/heartmarshall/worklisten-backend/internal/transport/rest"
)

// NewRouter builds the HTTP handler: probes at the root, the library API
// under /api/libraries, all behind the standard middleware chain. Uploads
// are throttled per client when uploadsPerMinute is positive.
func NewRouter(
	logger *slog.Logger,
	cors config.CORSConfig,
	health *rest.HealthHandler,
	libraries *rest.LibraryHandler,
	limiter *middleware.RateLimiter,
	uploadsPerMinute int,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Standard(logger, cors))

	r.Get("/live", health.Live)
	r.Get("/ready", health.Ready)
	r.Get("/health", health.Health)

	r.Route("/api/libraries", func(r chi.Router) {
		if limiter != nil {
			r.Use(middleware.ForMethods(limiter.Limit(uploadsPerMinute), http.MethodPost))
		}
		libraries.Routes(r)
	})

	return r
}
