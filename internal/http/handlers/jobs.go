package handlers

import (
	"net/http"
	"strconv"

	"server/internal/domain"
)

func (a *App) JobsList(w http.ResponseWriter, r *http.Request) {
	var filter domain.ContentJobFilter
	if status := r.URL.Query().Get("status"); status != "" {
		if status != string(domain.JobStatusGenerated) && status != string(domain.JobStatusFailed) {
			a.error(w, http.StatusBadRequest, "bad_request", "status must be generated or failed")
			return
		}
		s := domain.JobStatus(status)
		filter.Status = &s
	}
	if recipeID := r.URL.Query().Get("recipe_id"); recipeID != "" {
		filter.RecipeID = &recipeID
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n <= 0 {
			a.error(w, http.StatusBadRequest, "bad_request", "limit must be a positive integer")
			return
		}
		filter.Limit = n
	}

	jobs, err := a.Jobs.List(r.Context(), filter)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load jobs")
		return
	}

	items := make([]map[string]any, 0, len(jobs))
	for _, job := range jobs {
		items = append(items, jobListItemJSON(job))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func jobListItemJSON(job domain.ContentJobListItem) map[string]any {
	item := map[string]any{
		"id":             job.ID,
		"source_type":    string(job.SourceType),
		"blueprint_id":   job.BlueprintID,
		"blueprint_name": job.BlueprintName,
		"blueprint_kind": string(job.BlueprintKind),
		"status":         string(job.Status),
		"created_at":     job.CreatedAt,
		"updated_at":     job.UpdatedAt,
	}
	if job.RecipeID != nil {
		item["recipe_id"] = *job.RecipeID
	}
	if len(job.OutputsJSON) > 0 {
		item["outputs"] = rawJSON(job.OutputsJSON)
	}
	if len(job.ErrorsJSON) > 0 {
		item["errors"] = rawJSON(job.ErrorsJSON)
	}
	return item
}
