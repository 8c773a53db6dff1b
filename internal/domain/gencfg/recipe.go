package gencfg

import (
	"fmt"
	"strings"
)

// Ingredient is one normalized recipe ingredient.
type Ingredient struct {
	Name string `json:"name"`
	Qty  string `json:"qty"`
}

// Pantry lists ingredients the audience is assumed to already have.
type Pantry struct {
	Has []string `json:"has"`
}

// NormalizedRecipe is the fixed shape consumed by the renderer. Every field
// is populated; templates never see a missing value.
type NormalizedRecipe struct {
	Title       string       `json:"title"`
	Yield       string       `json:"yield"`
	Time        string       `json:"time"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []string     `json:"steps"`
	DietTags    []string     `json:"dietTags"`
	Pantry      Pantry       `json:"pantry"`
}

const (
	// DefaultRecipeTitle stands in when the source has no usable title.
	DefaultRecipeTitle = "Untitled Recipe"
	// DefaultRecipeYield is assumed when the source omits servings.
	DefaultRecipeYield = "4 servings"
	// DefaultRecipeTime is assumed when the source omits a duration.
	DefaultRecipeTime = "30 minutes"
)

// NormalizeRecipe coerces a loosely typed recipe-like object into the fixed
// shape. Total over all inputs: nil maps, wrong-typed fields and unknown
// keys all resolve to defaults rather than errors.
func NormalizeRecipe(raw map[string]any) NormalizedRecipe {
	rec := NormalizedRecipe{
		Title:       stringField(raw, "title", DefaultRecipeTitle),
		Yield:       stringField(raw, "yield", DefaultRecipeYield),
		Time:        stringField(raw, "time", DefaultRecipeTime),
		Ingredients: ingredientList(raw["ingredients"]),
		Steps:       stringList(raw["steps"]),
		DietTags:    stringList(raw["tags"]),
	}
	if len(rec.DietTags) == 0 {
		rec.DietTags = stringList(raw["dietTags"])
	}
	if pantry, ok := raw["pantry"].(map[string]any); ok {
		rec.Pantry.Has = stringList(pantry["has"])
	}
	if rec.Ingredients == nil {
		rec.Ingredients = []Ingredient{}
	}
	if rec.Steps == nil {
		rec.Steps = []string{}
	}
	if rec.DietTags == nil {
		rec.DietTags = []string{}
	}
	if rec.Pantry.Has == nil {
		rec.Pantry.Has = []string{}
	}
	return rec
}

// NormalizeFreeform derives a recipe shell from freeform text. The first
// non-empty line becomes the title; remaining lines become steps.
func NormalizeFreeform(text string) NormalizedRecipe {
	rec := NormalizeRecipe(nil)
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return rec
	}
	rec.Title = lines[0]
	if len(lines) > 1 {
		rec.Steps = lines[1:]
	}
	return rec
}

func stringField(raw map[string]any, key, fallback string) string {
	if raw == nil {
		return fallback
	}
	switch v := raw[key].(type) {
	case string:
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	case float64:
		return fmt.Sprintf("%v", v)
	}
	return fallback
}

func stringList(value any) []string {
	items, ok := value.([]any)
	if !ok {
		if direct, ok := value.([]string); ok {
			out := make([]string, 0, len(direct))
			for _, s := range direct {
				if strings.TrimSpace(s) != "" {
					out = append(out, strings.TrimSpace(s))
				}
			}
			return out
		}
		return nil
	}
	var out []string
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		if strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, strings.TrimSpace(s))
	}
	return out
}

func ingredientList(value any) []Ingredient {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	var out []Ingredient
	for _, item := range items {
		switch v := item.(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				out = append(out, Ingredient{Name: strings.TrimSpace(v), Qty: "to taste"})
			}
		case map[string]any:
			name := stringField(v, "name", "")
			if name == "" {
				continue
			}
			out = append(out, Ingredient{Name: name, Qty: stringField(v, "qty", "to taste")})
		}
	}
	return out
}
