package mockdata

import (
	"fmt"
	"strings"
)

// ViralScoreResponse is a mock virality prediction.
type ViralScoreResponse struct {
	Score     float64 `json:"score"`
	Band      string  `json:"band"`
	Rationale string  `json:"rationale"`
}

// SentimentResponse is a mock sentiment classification.
type SentimentResponse struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// EngagementEstimate is a mock reach/engagement projection.
type EngagementEstimate struct {
	Views    int     `json:"views"`
	Likes    int     `json:"likes"`
	Comments int     `json:"comments"`
	Rate     float64 `json:"rate"`
}

var sentimentLabels = []string{"positive", "neutral", "negative"}

var viralBands = []string{"low", "medium", "high"}

// ViralScore rates a title for a platform on a 0-100 scale.
func ViralScore(title, platform string) ViralScoreResponse {
	rng := NewRng(joinArgs("viral", title, platform))
	score := rng.Score("score", 40, 550, 10)
	band := viralBands[int(score)/34%len(viralBands)]
	return ViralScoreResponse{
		Score:     score,
		Band:      band,
		Rationale: fmt.Sprintf("Titles like %q historically trend %s on %s.", title, band, platform),
	}
}

// Sentiment classifies a text snippet.
func Sentiment(text string) SentimentResponse {
	rng := NewRng(joinArgs("sentiment", text))
	return SentimentResponse{
		Label:      rng.Pick("label", sentimentLabels),
		Confidence: rng.Score("confidence", 0.6, 39, 100),
	}
}

// SuggestHashtags returns up to n stable hashtag suggestions for a topic.
func SuggestHashtags(topic string, n int) []string {
	if n <= 0 {
		return []string{}
	}
	base := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(topic), " ", ""))
	if base == "" {
		base = "recipes"
	}
	pool := []string{
		"#" + base,
		"#" + base + "recipe",
		"#easy" + base,
		"#" + base + "athome",
		"#" + base + "hack",
		"#" + base + "tok",
	}
	rng := NewRng(joinArgs("hashtags", topic))
	if n > len(pool) {
		n = len(pool)
	}
	start := rng.Intn("start", len(pool))
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, pool[(start+i)%len(pool)])
	}
	return out
}

// Engagement projects views/likes/comments for a platform and follower count.
func Engagement(platform string, followers int) EngagementEstimate {
	if followers < 0 {
		followers = 0
	}
	rng := NewRng(joinArgs("engagement", platform, fmt.Sprintf("%d", followers)))
	rate := rng.Score("rate", 0.02, 60, 1000)
	views := followers/2 + rng.Intn("views", followers+1)
	likes := int(float64(views) * rate)
	return EngagementEstimate{
		Views:    views,
		Likes:    likes,
		Comments: likes/10 + rng.Intn("comments", 5),
		Rate:     rate,
	}
}
