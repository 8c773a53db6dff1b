package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"server/internal/domain"
)

func (a *App) CampaignArtifacts(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "id")
	campaign, err := a.Campaigns.GetByID(r.Context(), campaignID)
	if err != nil {
		if errors.Is(err, domain.ErrCampaignNotFound) || errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "campaign not found")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to load campaign")
		return
	}

	artifacts, err := a.Campaigns.ListArtifacts(r.Context(), campaign.ID)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load artifacts")
		return
	}

	items := make([]map[string]any, 0, len(artifacts))
	for _, artifact := range artifacts {
		items = append(items, map[string]any{
			"id":          artifact.ID,
			"campaign_id": artifact.CampaignID,
			"channel":     artifact.Channel,
			"variant":     artifact.Variant,
			"payload":     rawJSON(artifact.PayloadJSON),
			"created_at":  artifact.CreatedAt,
		})
	}
	a.json(w, http.StatusOK, map[string]any{
		"campaign": map[string]any{
			"id":     campaign.ID,
			"name":   campaign.Name,
			"status": campaign.Status,
		},
		"items": items,
	})
}

func rawJSON(b []byte) json.RawMessage {
	if len(b) == 0 {
		return nil
	}
	return json.RawMessage(b)
}
