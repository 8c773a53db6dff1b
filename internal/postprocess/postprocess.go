package postprocess

import (
	"time"

	"github.com/rs/zerolog"

	"server/internal/domain"
	"server/internal/domain/gencfg"
)

// Context carries the request-scoped inputs the enhancement stage records in
// the metadata envelope.
type Context struct {
	Blueprint  *domain.Blueprint
	SourceType domain.SourceType
	Source     gencfg.NormalizedRecipe
	Options    gencfg.GenerationOptions
	Provider   string
	MockMode   bool
}

// QualityWarnThreshold is the score below which a warning is logged.
const QualityWarnThreshold = 75.0

// Processor runs rendered content through schema check, sanitization,
// enhancement and quality scoring. No stage returns an error: malformed
// content degrades to an error-flagged payload with a lower quality score.
type Processor struct {
	logger zerolog.Logger
}

func New(logger zerolog.Logger) *Processor {
	return &Processor{logger: logger}
}

func (p *Processor) Process(rendered domain.RenderedContent, ctx Context) domain.ProcessedContent {
	content := ensureObject(rendered)
	content = sanitizeObject(content)
	content = enhance(content, ctx)
	processed, score := scoreQuality(content)
	if score < QualityWarnThreshold {
		kind := domain.BlueprintKind("")
		if ctx.Blueprint != nil {
			kind = ctx.Blueprint.Kind
		}
		p.logger.Warn().
			Str("blueprint_kind", string(kind)).
			Float64("quality_score", score).
			Msg("generated content scored below quality threshold")
	}
	return processed
}

// ensureObject guards the top-level shape. Anything that is not a non-nil
// object is wrapped rather than rejected.
func ensureObject(rendered domain.RenderedContent) map[string]any {
	if rendered == nil {
		return map[string]any{
			"error":   "renderer produced no content",
			"content": nil,
		}
	}
	return map[string]any(rendered)
}

func baseMetadata(ctx Context) map[string]any {
	meta := map[string]any{
		"generatedAt": time.Now().UTC().Format(time.RFC3339),
		"sourceType":  string(ctx.SourceType),
		"options":     ctx.Options,
		"provider":    ctx.Provider,
		"mockMode":    ctx.MockMode,
	}
	if ctx.Blueprint != nil {
		meta["blueprintName"] = ctx.Blueprint.Name
		meta["blueprintKind"] = string(ctx.Blueprint.Kind)
	}
	return meta
}
