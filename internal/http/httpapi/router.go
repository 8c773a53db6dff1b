package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"server/internal/http/handlers"
	"server/internal/infra"
	"server/internal/middleware"
)

func NewRouter(app *handlers.App, cfg *infra.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/content", func(r chi.Router) {
		r.Post("/preview", app.ContentPreview)
		r.Post("/generate", app.ContentGenerate)
		r.Get("/blueprints", app.BlueprintsList)
		r.Post("/blueprints/seed", app.BlueprintsSeed)
		r.Get("/jobs", app.JobsList)
		r.Get("/campaigns/{id}/artifacts", app.CampaignArtifacts)
		r.Get("/insights", app.ContentInsights)
	})

	r.Get("/metrics/dashboard-24h", app.Dashboard24h)

	return r
}
