package render

import "server/internal/domain"

// Static JSON templates, one per blueprint kind. String values may contain
// {{identifier}} placeholders resolved against BuildContext; identifiers
// missing from the context are left verbatim.
var staticTemplates = map[domain.BlueprintKind]map[string]any{
	domain.KindVideoScriptShort: {
		"hook": "This {{persona_style}} {{recipe_title}} is done in {{cook_time}} — watch this.",
		"beats": []any{
			map[string]any{
				"time":      "0-3s",
				"label":     "Hook",
				"voiceover": "Stop scrolling — {{recipe_title}}, the {{tone_style}} way.",
				"visual":    "Close-up of {{main_ingredient}}, {{platform_note}}.",
			},
			map[string]any{
				"time":      "3-12s",
				"label":     "Setup",
				"voiceover": "You only need {{ingredient_count}} ingredients. First: {{first_step}}.",
				"visual":    "Fast cuts of each ingredient hitting the counter.",
			},
			map[string]any{
				"time":      "12-22s",
				"label":     "Payoff",
				"voiceover": "{{step_count}} steps later you have {{yield}} of pure {{diet_tags}} comfort.",
				"visual":    "Steam rising off the finished plate.",
			},
			map[string]any{
				"time":      "22-{{duration}}",
				"label":     "CTA",
				"voiceover": "{{cta_text}} — link in bio.",
				"visual":    "End card with logo and handle.",
			},
		},
		"caption":  "{{recipe_title}} for the {{persona}} crowd. {{cta_text}}.",
		"hashtags": []any{"{{hashtag_topic}}", "easyrecipes", "#foodtok"},
	},
	domain.KindSocialCarousel: {
		"title": "{{recipe_title}} in {{step_count}} slides",
		"slides": []any{
			map[string]any{"heading": "{{recipe_title}}", "body": "A {{persona_style}} favorite, ready in {{cook_time}}."},
			map[string]any{"heading": "What you need", "body": "{{ingredient_count}} ingredients, starting with {{main_ingredient}}."},
			map[string]any{"heading": "How it goes", "body": "{{first_step}} — then {{step_count}} quick steps to {{yield}}."},
			map[string]any{"heading": "Save this", "body": "{{cta_text}}."},
		},
		"caption":  "Swipe for the full {{recipe_title}} breakdown. {{platform_note}}.",
		"hashtags": []any{"{{hashtag_topic}}", "mealprep"},
	},
	domain.KindBlogRecipe: {
		"title":           "{{recipe_title}}: a {{persona_style}} recipe for {{diet_tags}} eaters",
		"metaDescription": "Make {{recipe_title}} in {{cook_time}} with {{ingredient_count}} ingredients. A {{tone_style}} guide with step-by-step instructions.",
		"intro":           "If you cook one thing this week, make it {{recipe_title}}. This {{persona_style}} version comes together in {{cook_time}} and serves {{yield}}.",
		"sections": []any{
			map[string]any{"heading": "Why this works", "body": "The {{main_ingredient}} does the heavy lifting while everything else stays pantry-simple."},
			map[string]any{"heading": "Ingredients", "body": "You need {{ingredient_count}} ingredients for {{yield}}."},
			map[string]any{"heading": "Step-by-step", "body": "{{first_step}}. Follow the remaining {{step_count}} steps in order."},
			map[string]any{"heading": "Serving and storage", "body": "Serve hot. Leftovers keep three days refrigerated."},
		},
		"schemaMarkup": map[string]any{
			"@context":    "https://schema.org",
			"@type":       "Recipe",
			"name":        "{{recipe_title}}",
			"totalTime":   "{{cook_time}}",
			"recipeYield": "{{yield}}",
		},
		"conclusion": "{{cta_text}} and tell us how your {{recipe_title}} turned out.",
	},
	domain.KindEmailCampaign: {
		"subject":   "{{recipe_title}} in {{cook_time}} — tonight's answer",
		"preheader": "{{ingredient_count}} ingredients, {{step_count}} steps, zero stress.",
		"blocks": []any{
			map[string]any{"type": "header", "text": "{{recipe_title}}"},
			map[string]any{"type": "body", "text": "A {{tone_style}} pick for the {{persona}} in you: {{recipe_title}}, ready in {{cook_time}} and sized for {{yield}}."},
			map[string]any{"type": "body", "text": "Start with {{main_ingredient}}. {{first_step}}."},
			map[string]any{"type": "cta", "text": "{{cta_text}}"},
		},
		"footer": "You are receiving this because you subscribed to recipe updates.",
	},
	domain.KindPushNotification: {
		"title":    "{{recipe_title}} is calling",
		"body":     "{{cook_time}}, {{ingredient_count}} ingredients. {{cta_text}}.",
		"deepLink": "app://recipes/{{hashtag_topic}}",
		"badge":    1,
	},
}
