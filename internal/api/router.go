package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

// RouterConfig carries the router settings that come from configuration.
type RouterConfig struct {
	Token              string
	RateLimitPerMinute int
}

// NewRouter builds and returns the Chi router with all routes configured.
// The health endpoint is unauthenticated; every other route requires bearer
// auth. Rate limiting is applied globally per IP.
func NewRouter(handlers *Handlers, cfg RouterConfig, db dbPinger, redisClient redisPinger, log *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(log))
	if cfg.RateLimitPerMinute > 0 {
		r.Use(httprate.LimitByIP(cfg.RateLimitPerMinute, time.Minute))
	}

	r.Get("/api/v1/health", HealthHandlerFunc(db, redisClient, log))

	r.Group(func(r chi.Router) {
		r.Use(BearerAuth(cfg.Token))

		r.Get("/api/v1/regions", handlers.ListRegions)
		r.Get("/api/v1/places", handlers.ListPlaces)
		r.Get("/api/v1/places/popular", handlers.PopularPlaces)

		r.Post("/api/v1/routes", handlers.BuildRoute)
		r.Post("/api/v1/alerts", handlers.EvaluateAlerts)
		r.Post("/api/v1/suggestions", handlers.Suggest)
		r.Post("/api/v1/explore", handlers.Explore)
		r.Post("/api/v1/overview", handlers.Overview)

		r.Post("/api/v1/drafts", handlers.CreateDraft)
		r.Get("/api/v1/drafts/{id}", handlers.GetDraft)
		r.Put("/api/v1/drafts/{id}", handlers.PutDraft)

		r.Post("/api/v1/catalog/reload", handlers.ReloadCatalog)
	})

	return r
}

// Ensure chi.Mux implements http.Handler.
var _ http.Handler = (*chi.Mux)(nil)
