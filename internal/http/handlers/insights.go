package handlers

import (
	"net/http"
	"strconv"

	"server/internal/providers/mockdata"
)

// ContentInsights serves deterministic demo analytics for a title/topic.
// Same query, same answer: the providers hash their inputs instead of
// calling a model, so UI demos stay reproducible.
func (a *App) ContentInsights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	title := q.Get("title")
	if title == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "title is required")
		return
	}
	platform := q.Get("platform")
	if platform == "" {
		platform = "TikTok"
	}
	followers := 10000
	if raw := q.Get("followers"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			a.error(w, http.StatusBadRequest, "bad_request", "followers must be a non-negative integer")
			return
		}
		followers = n
	}

	a.json(w, http.StatusOK, map[string]any{
		"viral_score": mockdata.ViralScore(title, platform),
		"sentiment":   mockdata.Sentiment(title),
		"hashtags":    mockdata.SuggestHashtags(title, 4),
		"engagement":  mockdata.Engagement(platform, followers),
	})
}
