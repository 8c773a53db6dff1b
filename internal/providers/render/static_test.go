package render

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"server/internal/domain"
	"server/internal/domain/gencfg"
)

func testRequest(kind domain.BlueprintKind) Request {
	opts := gencfg.GenerationOptions{
		Persona:  "Chef",
		Tone:     "Friendly",
		Platform: "TikTok",
		Duration: "30s",
		CTA:      "App install",
	}
	source := gencfg.NormalizeRecipe(map[string]any{
		"title":       "garlic butter pasta",
		"time":        "20 minutes",
		"ingredients": []any{"garlic", "butter", "pasta"},
		"steps":       []any{"Boil the pasta", "Melt the butter", "Toss together"},
		"tags":        []any{"vegetarian"},
	})
	return Request{Kind: kind, Source: source, Options: opts}
}

func TestStaticRendererDeterministic(t *testing.T) {
	r := NewStaticRenderer()
	req := testRequest(domain.KindVideoScriptShort)

	first, err := r.Render(context.Background(), req)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	second, err := r.Render(context.Background(), req)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("renders differ:\n%#v\n%#v", first, second)
	}
}

func TestStaticRendererResolvesDocumentedPlaceholders(t *testing.T) {
	r := NewStaticRenderer()
	req := testRequest(domain.KindVideoScriptShort)
	ctx := BuildContext(req.Source, req.Options)

	out, err := r.Render(context.Background(), req)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	walkStrings(out, func(s string) {
		for key := range ctx {
			if strings.Contains(s, "{{"+key+"}}") {
				t.Fatalf("unresolved documented placeholder %q in %q", key, s)
			}
		}
	})

	hook, _ := out["hook"].(string)
	if !strings.Contains(hook, "Garlic Butter Pasta") {
		t.Fatalf("hook = %q, want recipe title substituted", hook)
	}
}

func TestStaticRendererLeavesUnknownPlaceholders(t *testing.T) {
	out := substitute("before {{no_such_key}} after {{recipe_title}}", map[string]string{"recipe_title": "Pasta"})
	s, _ := out.(string)
	if s != "before {{no_such_key}} after Pasta" {
		t.Fatalf("substitute = %q", s)
	}
}

func TestStaticRendererUnsupportedKind(t *testing.T) {
	r := NewStaticRenderer()
	req := testRequest(domain.BlueprintKind("hologram"))
	_, err := r.Render(context.Background(), req)
	if !errors.Is(err, domain.ErrUnsupportedBlueprint) {
		t.Fatalf("err = %v, want ErrUnsupportedBlueprint", err)
	}
}

func TestStaticRendererDoesNotMutateTemplate(t *testing.T) {
	r := NewStaticRenderer()
	req := testRequest(domain.KindEmailCampaign)
	if _, err := r.Render(context.Background(), req); err != nil {
		t.Fatalf("render: %v", err)
	}
	subject, _ := staticTemplates[domain.KindEmailCampaign]["subject"].(string)
	if !strings.Contains(subject, "{{recipe_title}}") {
		t.Fatalf("template mutated: subject = %q", subject)
	}
}

func TestGuideFallsBackForUnknownValues(t *testing.T) {
	req := testRequest(domain.KindVideoScriptShort)
	req.Options.Persona = "Pirate"
	ctx := BuildContext(req.Source, req.Options)
	if ctx["persona_style"] != personaStyles[gencfg.DefaultPersona] {
		t.Fatalf("persona_style = %q, want default guide entry", ctx["persona_style"])
	}
}

func walkStrings(value any, fn func(string)) {
	switch v := value.(type) {
	case domain.RenderedContent:
		walkStrings(map[string]any(v), fn)
	case map[string]any:
		for _, item := range v {
			walkStrings(item, fn)
		}
	case []any:
		for _, item := range v {
			walkStrings(item, fn)
		}
	case string:
		fn(v)
	}
}
