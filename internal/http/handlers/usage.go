package handlers

import (
	"encoding/json"
	"net/http"

	"server/internal/domain"
	"server/internal/middleware"
	"server/internal/sqlinline"
)

const (
	eventContentPreview  = "CONTENT_PREVIEW"
	eventContentGenerate = "CONTENT_GENERATE"
)

// recordUsage writes a usage event. Analytics failures are logged, never
// surfaced to the caller.
func (a *App) recordUsage(r *http.Request, eventType string, kind domain.BlueprintKind, success bool) {
	if a.SQL == nil {
		return
	}
	country := ""
	if a.GeoIP != nil {
		if code, err := a.GeoIP.CountryCode(middleware.ClientIP(r)); err == nil {
			country = code
		}
	}
	props := json.RawMessage(`{}`)
	if _, err := a.SQL.Exec(r.Context(), sqlinline.QInsertUsageEvent,
		eventType, string(kind), success, country, props,
	); err != nil {
		a.Logger.Error().Err(err).Str("event_type", eventType).Msg("failed to record usage event")
	}
}
