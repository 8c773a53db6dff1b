package handlers

import (
	"net/http"

	"server/internal/domain"
)

func (a *App) BlueprintsList(w http.ResponseWriter, r *http.Request) {
	blueprints, err := a.Blueprints.List(r.Context())
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load blueprints")
		return
	}
	items := make([]map[string]any, 0, len(blueprints))
	for _, b := range blueprints {
		items = append(items, map[string]any{
			"id":            b.ID,
			"name":          b.Name,
			"kind":          string(b.Kind),
			"description":   b.Description,
			"input_schema":  b.InputSchema,
			"output_schema": b.OutputSchema,
			"defaults":      b.Defaults,
			"created_at":    b.CreatedAt,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// BlueprintsSeed inserts the default catalog for kinds not yet present.
func (a *App) BlueprintsSeed(w http.ResponseWriter, r *http.Request) {
	inserted, err := a.Blueprints.SeedDefaults(r.Context(), domain.DefaultBlueprints())
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to seed blueprints")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"inserted": inserted})
}
