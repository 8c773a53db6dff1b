package domain

// RenderedContent is the raw, blueprint-shaped object produced by template
// substitution. Its structure varies per blueprint kind.
type RenderedContent map[string]any

// ProcessedContent is rendered content after sanitization and enhancement,
// carrying a "_metadata" envelope with the quality score and kind-specific
// derived fields.
type ProcessedContent map[string]any

// MetadataKey is the reserved top-level key for the metadata envelope.
const MetadataKey = "_metadata"

// Metadata returns the metadata envelope, or nil when absent.
func (p ProcessedContent) Metadata() map[string]any {
	meta, _ := p[MetadataKey].(map[string]any)
	return meta
}

// QualityScore returns _metadata.qualityScore, or -1 when missing.
func (p ProcessedContent) QualityScore() float64 {
	meta := p.Metadata()
	if meta == nil {
		return -1
	}
	score, ok := meta["qualityScore"].(float64)
	if !ok {
		return -1
	}
	return score
}
