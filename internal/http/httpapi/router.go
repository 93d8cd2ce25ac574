package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"tiergate/internal/http/handlers"
	"tiergate/internal/infra"
	"tiergate/internal/middleware"
)

// NewRouter assembles the HTTP surface with the shared middleware chain.
func NewRouter(app *handlers.App, cfg *infra.Config, lookup middleware.CountryLookup) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(app.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute))
	r.Use(middleware.Locale(cfg.DefaultLocale, lookup))
	r.Use(middleware.OptionalAuthJWT(cfg.JWTSecret))

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/tiers", app.Tiers)

	r.Route("/v1/me", func(r chi.Router) {
		r.Get("/tier", app.MeTier)
		r.Get("/access", app.MeAccess)
	})

	return r
}
