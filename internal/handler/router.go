package handler

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/rosterhq/roster/internal/config"
	"github.com/rosterhq/roster/internal/middleware"
)

// NewRouter wires middleware and routes for the API. The same router
// serves both the standalone HTTP server and the Lambda adapter.
func NewRouter(
	base *Handler,
	users *UserHandler,
	health *HealthHandler,
	metricsHandler *MetricsHandler,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Security(middleware.SecurityConfig{
		IsDevelopment: cfg.IsDevelopment(),
	}))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))

	if origins := cfg.GetCORSAllowedOrigins(); len(origins) > 0 {
		corsCfg := middleware.DefaultCORSConfig()
		corsCfg.AllowedOrigins = origins
		r.Use(middleware.CORS(corsCfg))
	}

	r.Get("/healthz", health.Healthz)
	r.Get("/readyz", health.Readyz)
	r.Get("/metrics", metricsHandler.Metrics)
	r.Get("/", base.Hello)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/", users.List)
			r.Post("/", users.Create)
			r.Get("/{id}", users.Get)
			r.Put("/{id}", users.Update)
			r.Delete("/{id}", users.Delete)
		})
	})

	r.NotFound(base.NotFound)
	r.MethodNotAllowed(base.MethodNotAllowed)

	return r
}
