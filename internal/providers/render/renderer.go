package render

import (
	"context"

	"server/internal/domain"
	"server/internal/domain/gencfg"
)

const (
	staticProviderName = "static"
	openAIProviderName = "openai"
)

// Request carries everything a renderer needs to produce content for one
// blueprint kind.
type Request struct {
	Kind    domain.BlueprintKind
	Source  gencfg.NormalizedRecipe
	Options gencfg.GenerationOptions
}

// Renderer produces blueprint-shaped content from a normalized source.
type Renderer interface {
	Render(ctx context.Context, req Request) (domain.RenderedContent, error)
	// Provider names the backend that produced the last successful render
	// path ("static" or "openai").
	Provider() string
}
