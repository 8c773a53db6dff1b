package domain

// DefaultBlueprints returns the fixed catalog inserted by the seed routine.
// Kinds already present in storage are skipped, so seeding is idempotent.
func DefaultBlueprints() []Blueprint {
	recipeInput := []SchemaField{
		{Name: "title", Type: "string", Required: true, Description: "Recipe title"},
		{Name: "ingredients", Type: "array", Required: false, Description: "Ingredient names or {name, qty} objects"},
		{Name: "steps", Type: "array", Required: false, Description: "Ordered instructions"},
		{Name: "tags", Type: "array", Required: false, Description: "Diet tags"},
	}
	defaults := map[string]string{
		"persona":  "Chef",
		"tone":     "Friendly",
		"platform": "TikTok",
		"duration": "30s",
		"cta":      "App install",
	}

	return []Blueprint{
		{
			Name:        "Short Video Script",
			Kind:        KindVideoScriptShort,
			Description: "Timed hook/beat/CTA script for short-form vertical video.",
			InputSchema: recipeInput,
			OutputSchema: []SchemaField{
				{Name: "hook", Type: "string", Required: true},
				{Name: "beats", Type: "array", Required: true, Description: "Timed beats with voiceover and visual direction"},
				{Name: "caption", Type: "string", Required: true},
				{Name: "hashtags", Type: "array", Required: true},
			},
			Defaults: defaults,
		},
		{
			Name:        "Social Carousel",
			Kind:        KindSocialCarousel,
			Description: "Multi-slide social post with per-slide headings and bodies.",
			InputSchema: recipeInput,
			OutputSchema: []SchemaField{
				{Name: "title", Type: "string", Required: true},
				{Name: "slides", Type: "array", Required: true},
				{Name: "caption", Type: "string", Required: true},
				{Name: "hashtags", Type: "array", Required: true},
			},
			Defaults: defaults,
		},
		{
			Name:        "Recipe Blog Post",
			Kind:        KindBlogRecipe,
			Description: "SEO-ready blog article with sections and schema.org markup.",
			InputSchema: recipeInput,
			OutputSchema: []SchemaField{
				{Name: "title", Type: "string", Required: true},
				{Name: "metaDescription", Type: "string", Required: true},
				{Name: "intro", Type: "string", Required: true},
				{Name: "sections", Type: "array", Required: true},
				{Name: "schemaMarkup", Type: "object", Required: false},
				{Name: "conclusion", Type: "string", Required: true},
			},
			Defaults: defaults,
		},
		{
			Name:        "Email Campaign",
			Kind:        KindEmailCampaign,
			Description: "Subject, preheader and block-based email body.",
			InputSchema: recipeInput,
			OutputSchema: []SchemaField{
				{Name: "subject", Type: "string", Required: true},
				{Name: "preheader", Type: "string", Required: false},
				{Name: "blocks", Type: "array", Required: true},
				{Name: "footer", Type: "string", Required: false},
			},
			Defaults: defaults,
		},
		{
			Name:        "Push Notification",
			Kind:        KindPushNotification,
			Description: "Title, body and deep link for a mobile push payload.",
			InputSchema: recipeInput,
			OutputSchema: []SchemaField{
				{Name: "title", Type: "string", Required: true},
				{Name: "body", Type: "string", Required: true},
				{Name: "deepLink", Type: "string", Required: false},
				{Name: "badge", Type: "number", Required: false},
			},
			Defaults: defaults,
		},
	}
}
