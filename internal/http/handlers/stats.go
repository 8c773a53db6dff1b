package handlers

import (
	"net/http"

	"server/internal/domain"
	"server/internal/sqlinline"
)

func (a *App) Dashboard24h(w http.ResponseWriter, r *http.Request) {
	row := a.SQL.QueryRow(r.Context(), sqlinline.QDashboard24h)
	var summary domain.DashboardSummary
	var successRate *float64
	if err := row.Scan(&summary.Generated, &summary.Failed, &summary.Previews, &successRate); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load dashboard stats")
		return
	}
	if successRate != nil {
		summary.SuccessRate = *successRate
	}
	a.json(w, http.StatusOK, map[string]any{
		"generated":    summary.Generated,
		"failed":       summary.Failed,
		"previews":     summary.Previews,
		"success_rate": summary.SuccessRate,
	})
}
