package render

import (
	"strconv"
	"strings"

	"server/internal/domain/gencfg"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var personaStyles = map[string]string{
	"Chef":        "chef-approved",
	"Busy Parent": "weeknight-friendly",
	"College":     "dorm-friendly",
	"Vegan":       "plant-based",
	"Athlete":     "protein-packed",
}

var toneStyles = map[string]string{
	"Friendly":     "warm and upbeat",
	"Professional": "polished and direct",
	"Playful":      "cheeky and fun",
	"Bold":         "high-energy and punchy",
}

var platformNotes = map[string]string{
	"TikTok":    "fast cuts and bold text overlays",
	"Instagram": "polished visuals worth saving",
	"YouTube":   "searchable title and a longer hold",
	"Facebook":  "shareable and community-first",
}

var ctaTexts = map[string]string{
	"App install": "Download the app for the full recipe",
	"Newsletter":  "Join the newsletter for weekly recipes",
	"Follow":      "Follow for more quick recipes",
	"Visit site":  "Get the full recipe on the site",
}

func guide(m map[string]string, key, fallbackKey string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return m[fallbackKey]
}

// BuildContext flattens the normalized source and options into the string
// substitution map used by the static templates. Every documented template
// identifier resolves to a value here.
func BuildContext(source gencfg.NormalizedRecipe, opts gencfg.GenerationOptions) map[string]string {
	caser := cases.Title(language.Und)

	mainIngredient := "fresh ingredients"
	if len(source.Ingredients) > 0 {
		mainIngredient = strings.ToLower(source.Ingredients[0].Name)
	}
	firstStep := "Prep your ingredients"
	if len(source.Steps) > 0 {
		firstStep = source.Steps[0]
	}
	dietTags := "everyday"
	if len(source.DietTags) > 0 {
		dietTags = strings.Join(source.DietTags, ", ")
	}

	return map[string]string{
		"recipe_title":     caser.String(source.Title),
		"main_ingredient":  mainIngredient,
		"ingredient_count": strconv.Itoa(len(source.Ingredients)),
		"step_count":       strconv.Itoa(len(source.Steps)),
		"cook_time":        source.Time,
		"yield":            source.Yield,
		"diet_tags":        dietTags,
		"first_step":       firstStep,
		"persona":          opts.Persona,
		"persona_style":    guide(personaStyles, opts.Persona, gencfg.DefaultPersona),
		"tone":             opts.Tone,
		"tone_style":       guide(toneStyles, opts.Tone, gencfg.DefaultTone),
		"platform":         opts.Platform,
		"platform_note":    guide(platformNotes, opts.Platform, gencfg.DefaultPlatform),
		"duration":         opts.Duration,
		"cta":              opts.CTA,
		"cta_text":         guide(ctaTexts, opts.CTA, gencfg.DefaultCTA),
		"hashtag_topic":    hashtagTopic(source.Title),
	}
}

func hashtagTopic(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "recipes"
	}
	return b.String()
}
