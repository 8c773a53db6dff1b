package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"server/internal/domain"
	"server/internal/domain/gencfg"
	"server/internal/postprocess"
	"server/internal/providers/render"
)

type contentRequest struct {
	SourceType       string                   `json:"source_type"`
	RecipeID         string                   `json:"recipe_id"`
	FreeformText     string                   `json:"freeform_text"`
	BlueprintID      string                   `json:"blueprint_id"`
	Options          gencfg.GenerationOptions `json:"options"`
	Persist          bool                     `json:"persist"`
	LinkToCampaignID string                   `json:"link_to_campaign_id"`
}

// resolvedRequest is a content request after blueprint lookup, source
// normalization and option validation.
type resolvedRequest struct {
	blueprint  *domain.Blueprint
	sourceType domain.SourceType
	recipeID   *string
	source     gencfg.NormalizedRecipe
	options    gencfg.GenerationOptions
}

func (a *App) resolveContentRequest(w http.ResponseWriter, r *http.Request, req *contentRequest) (*resolvedRequest, bool) {
	if req.BlueprintID == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "blueprint_id is required")
		return nil, false
	}
	blueprint, err := a.Blueprints.GetByID(r.Context(), req.BlueprintID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "blueprint not found")
			return nil, false
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to load blueprint")
		return nil, false
	}

	req.Options.Normalize()
	if err := req.Options.Validate(); err != nil {
		a.error(w, http.StatusBadRequest, "invalid_options", err.Error())
		return nil, false
	}

	resolved := &resolvedRequest{
		blueprint: blueprint,
		options:   req.Options,
	}

	switch domain.SourceType(req.SourceType) {
	case domain.SourceRecipe:
		if req.RecipeID == "" {
			a.error(w, http.StatusBadRequest, "bad_request", "recipe_id is required for recipe sources")
			return nil, false
		}
		recipe, err := a.Recipes.GetByID(r.Context(), req.RecipeID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				a.error(w, http.StatusNotFound, "not_found", "recipe not found")
				return nil, false
			}
			a.error(w, http.StatusInternalServerError, "internal", "failed to load recipe")
			return nil, false
		}
		var raw map[string]any
		_ = json.Unmarshal(recipe.DataJSON, &raw)
		resolved.sourceType = domain.SourceRecipe
		resolved.recipeID = &recipe.ID
		resolved.source = gencfg.NormalizeRecipe(raw)
	case domain.SourceFreeform:
		if req.FreeformText == "" {
			a.error(w, http.StatusBadRequest, "bad_request", "freeform_text is required for freeform sources")
			return nil, false
		}
		resolved.sourceType = domain.SourceFreeform
		resolved.source = gencfg.NormalizeFreeform(req.FreeformText)
	default:
		a.error(w, http.StatusBadRequest, "invalid_source", "source_type must be recipe or freeform")
		return nil, false
	}

	return resolved, true
}

func (a *App) renderAndProcess(r *http.Request, resolved *resolvedRequest) (domain.ProcessedContent, error) {
	rendered, err := a.Renderer.Render(r.Context(), render.Request{
		Kind:    resolved.blueprint.Kind,
		Source:  resolved.source,
		Options: resolved.options,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderFailure, err)
	}
	return a.Processor.Process(rendered, postprocess.Context{
		Blueprint:  resolved.blueprint,
		SourceType: resolved.sourceType,
		Source:     resolved.source,
		Options:    resolved.options,
		Provider:   a.Renderer.Provider(),
		MockMode:   a.MockMode,
	}), nil
}

func (a *App) contentResponse(resolved *resolvedRequest, outputs domain.ProcessedContent) map[string]any {
	return map[string]any{
		"success": true,
		"blueprint": map[string]any{
			"id":   resolved.blueprint.ID,
			"name": resolved.blueprint.Name,
			"kind": string(resolved.blueprint.Kind),
		},
		"source_data": resolved.source,
		"options":     resolved.options,
		"outputs":     outputs,
		"mock_mode":   a.MockMode,
	}
}

// ContentPreview renders and postprocesses without touching the job ledger.
func (a *App) ContentPreview(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	resolved, ok := a.resolveContentRequest(w, r, &req)
	if !ok {
		return
	}

	outputs, err := a.renderAndProcess(r, resolved)
	if err != nil {
		a.recordUsage(r, eventContentPreview, resolved.blueprint.Kind, false)
		a.error(w, http.StatusBadGateway, "provider_failure", "content rendering failed")
		return
	}

	a.recordUsage(r, eventContentPreview, resolved.blueprint.Kind, true)
	a.json(w, http.StatusOK, a.contentResponse(resolved, outputs))
}

// ContentGenerate renders and postprocesses, writing a job row when persist
// is set and attaching the payload to a linked campaign regardless. With both
// set, the job and artifact land in one transaction.
func (a *App) ContentGenerate(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	resolved, ok := a.resolveContentRequest(w, r, &req)
	if !ok {
		return
	}

	// Resolve the campaign before any write so an unknown id leaves no job
	// row behind.
	var campaign *domain.Campaign
	if req.LinkToCampaignID != "" {
		var err error
		campaign, err = a.Campaigns.GetByID(r.Context(), req.LinkToCampaignID)
		if err != nil {
			if errors.Is(err, domain.ErrCampaignNotFound) || errors.Is(err, domain.ErrNotFound) {
				a.error(w, http.StatusNotFound, "not_found", "campaign not found")
				return
			}
			a.error(w, http.StatusInternalServerError, "internal", "failed to load campaign")
			return
		}
	}

	inputsJSON, _ := json.Marshal(map[string]any{
		"source_type":  string(resolved.sourceType),
		"recipe_id":    resolved.recipeID,
		"blueprint_id": resolved.blueprint.ID,
		"options":      resolved.options,
	})

	outputs, err := a.renderAndProcess(r, resolved)
	if err != nil {
		if req.Persist {
			errorsJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
			job := &domain.ContentJob{
				ID:          uuid.NewString(),
				RecipeID:    resolved.recipeID,
				SourceType:  resolved.sourceType,
				BlueprintID: resolved.blueprint.ID,
				Status:      domain.JobStatusFailed,
				InputsJSON:  inputsJSON,
				ErrorsJSON:  errorsJSON,
			}
			if createErr := a.Jobs.Create(r.Context(), job); createErr != nil {
				a.Logger.Error().Err(createErr).Msg("failed to record failed content job")
			}
		}
		a.recordUsage(r, eventContentGenerate, resolved.blueprint.Kind, false)
		a.error(w, http.StatusBadGateway, "provider_failure", "content rendering failed")
		return
	}

	outputsJSON, _ := json.Marshal(outputs)

	var artifact *domain.CampaignArtifact
	if campaign != nil {
		artifact = &domain.CampaignArtifact{
			ID:          uuid.NewString(),
			CampaignID:  campaign.ID,
			Channel:     domain.ChannelForKind(resolved.blueprint.Kind),
			Variant:     "default",
			PayloadJSON: outputsJSON,
		}
	}

	var jobID string
	switch {
	case req.Persist:
		job := &domain.ContentJob{
			ID:          uuid.NewString(),
			RecipeID:    resolved.recipeID,
			SourceType:  resolved.sourceType,
			BlueprintID: resolved.blueprint.ID,
			Status:      domain.JobStatusGenerated,
			InputsJSON:  inputsJSON,
			OutputsJSON: outputsJSON,
		}
		var persistErr error
		if artifact != nil {
			persistErr = a.Jobs.CreateWithArtifact(r.Context(), job, artifact)
		} else {
			persistErr = a.Jobs.Create(r.Context(), job)
		}
		if persistErr != nil {
			a.recordUsage(r, eventContentGenerate, resolved.blueprint.Kind, false)
			a.error(w, http.StatusInternalServerError, "internal", "failed to persist content job")
			return
		}
		jobID = job.ID
	case artifact != nil:
		// A campaign link attaches the payload even when the job ledger is
		// skipped.
		if err := a.Campaigns.AttachArtifact(r.Context(), artifact); err != nil {
			a.recordUsage(r, eventContentGenerate, resolved.blueprint.Kind, false)
			a.error(w, http.StatusInternalServerError, "internal", "failed to attach campaign artifact")
			return
		}
	}

	a.recordUsage(r, eventContentGenerate, resolved.blueprint.Kind, true)

	resp := a.contentResponse(resolved, outputs)
	if jobID != "" {
		resp["job_id"] = jobID
	}
	a.json(w, http.StatusOK, resp)
}
