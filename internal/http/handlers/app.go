package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/infra/geoip"
	"server/internal/postprocess"
	"server/internal/providers/render"
)

// App bundles the dependencies shared by every HTTP handler.
type App struct {
	SQL        infra.SQLExecutor
	Blueprints domain.BlueprintRepository
	Recipes    domain.RecipeRepository
	Jobs       domain.ContentJobRepository
	Campaigns  domain.CampaignRepository
	Renderer   render.Renderer
	Processor  *postprocess.Processor
	GeoIP      geoip.CountryResolver
	Logger     zerolog.Logger
	MockMode   bool
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, tag, message string) {
	a.json(w, code, map[string]string{"error": tag, "message": message})
}
