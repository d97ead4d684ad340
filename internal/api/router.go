// Package api provides the HTTP API for sitekit.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/bargom/sitekit/internal/api/handlers"
	"github.com/bargom/sitekit/internal/health"
	"github.com/bargom/sitekit/pkg/logging"
	"github.com/bargom/sitekit/pkg/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RouterConfig holds optional components for the router.
type RouterConfig struct {
	Logger        *slog.Logger
	Metrics       *metrics.Registry
	HealthHandler *health.Handler
}

// NewRouter creates a new Chi router with all routes and middleware configured.
func NewRouter(h *handlers.Handler) chi.Router {
	return NewRouterWithConfig(h, RouterConfig{})
}

// NewRouterWithConfig creates a new Chi router with optional components.
func NewRouterWithConfig(h *handlers.Handler, cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if cfg.Logger != nil {
		r.Use(logging.RequestLogger(cfg.Logger))
	} else {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	if cfg.Metrics != nil {
		r.Use(metrics.HTTPMiddleware(cfg.Metrics))
	}
	r.Use(jsonContentType)

	// Health and metrics
	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.Health)
		r.Get("/health/live", cfg.HealthHandler.Live)
		r.Get("/health/ready", cfg.HealthHandler.Ready)
	}
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", h.ListCategories)
			r.Post("/", h.CreateCategory)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetCategory)
				r.Put("/", h.UpdateCategory)
				r.Delete("/", h.DeleteCategory)
			})
		})

		r.Route("/news", func(r chi.Router) {
			r.Get("/", h.ListNews)
			r.Post("/", h.CreateNews)
			r.Delete("/", h.BatchDeleteNews)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetNews)
				r.Put("/", h.UpdateNews)
				r.Delete("/", h.DeleteNews)
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.ListProducts)
			r.Post("/", h.CreateProduct)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetProduct)
				r.Put("/", h.UpdateProduct)
				r.Delete("/", h.DeleteProduct)
			})
		})

		r.Route("/messages", func(r chi.Router) {
			r.Get("/", h.ListMessages)
			r.Post("/", h.CreateMessage)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetMessage)
				r.Put("/", h.UpdateMessage)
				r.Delete("/", h.DeleteMessage)
			})
		})
	})

	return r
}

// jsonContentType is middleware that sets the Content-Type header to application/json.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
