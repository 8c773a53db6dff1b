package render

import (
	"context"
	"fmt"
	"regexp"

	"server/internal/domain"
)

// StaticRenderer substitutes {{placeholder}} variables into the static JSON
// template for a blueprint kind. It consults no external state, so identical
// requests yield identical output.
type StaticRenderer struct{}

func NewStaticRenderer() *StaticRenderer {
	return &StaticRenderer{}
}

var placeholderPattern = regexp.MustCompile(`\{\{([a-zA-Z0-9_]+)\}\}`)

func (s *StaticRenderer) Render(_ context.Context, req Request) (domain.RenderedContent, error) {
	tpl, ok := staticTemplates[req.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedBlueprint, req.Kind)
	}
	ctx := BuildContext(req.Source, req.Options)
	out, _ := substitute(tpl, ctx).(map[string]any)
	return domain.RenderedContent(out), nil
}

func (s *StaticRenderer) Provider() string { return staticProviderName }

// substitute deep-clones the template value, replacing placeholders in every
// string leaf. Unknown identifiers keep their literal placeholder text.
func substitute(value any, ctx map[string]string) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = substitute(item, ctx)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = substitute(item, ctx)
		}
		return out
	case string:
		return placeholderPattern.ReplaceAllStringFunc(v, func(match string) string {
			key := placeholderPattern.FindStringSubmatch(match)[1]
			if val, ok := ctx[key]; ok {
				return val
			}
			return match
		})
	default:
		return v
	}
}

var _ Renderer = (*StaticRenderer)(nil)
