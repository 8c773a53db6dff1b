package postprocess

import "server/internal/domain"

// scoreQuality computes the [0,100] score from four structural pass/fail
// checks and records both on the metadata envelope.
func scoreQuality(content map[string]any) (domain.ProcessedContent, float64) {
	meta, _ := content[domain.MetadataKey].(map[string]any)

	nonMetaKeys := 0
	for key := range content {
		if key == domain.MetadataKey || key == "error" {
			continue
		}
		if key == "content" && content[key] == nil {
			continue
		}
		nonMetaKeys++
	}
	_, hasError := content["error"]

	checks := map[string]bool{
		"hasContent":  len(content) > 0,
		"hasMetadata": meta != nil,
		"notEmpty":    nonMetaKeys > 0,
		"noErrors":    !hasError,
	}

	passed := 0
	for _, ok := range checks {
		if ok {
			passed++
		}
	}
	score := float64(passed) / float64(len(checks)) * 100

	if meta != nil {
		meta["qualityChecks"] = checks
		meta["qualityScore"] = score
	}
	return domain.ProcessedContent(content), score
}
