package domain

import "time"

// BlueprintKind is the string tag selecting template, enhancement logic and
// campaign channel for one content shape.
type BlueprintKind string

const (
	KindVideoScriptShort BlueprintKind = "video_script_short"
	KindSocialCarousel   BlueprintKind = "social_carousel"
	KindBlogRecipe       BlueprintKind = "blog_recipe"
	KindEmailCampaign    BlueprintKind = "email_campaign"
	KindPushNotification BlueprintKind = "push_notification"
)

// SchemaField describes one declared input or output field of a blueprint.
type SchemaField struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description,omitempty"`
}

// Blueprint is a named template definition. Rows are seeded once and never
// mutated by generation requests.
type Blueprint struct {
	ID           string
	Name         string
	Kind         BlueprintKind
	Description  string
	InputSchema  []SchemaField
	OutputSchema []SchemaField
	Defaults     map[string]string
	CreatedAt    time.Time
}

// DefaultArtifactChannel is used for kinds missing from the channel map.
const DefaultArtifactChannel = "content"

var kindChannels = map[BlueprintKind]string{
	KindVideoScriptShort: "video_script",
	KindSocialCarousel:   "social",
	KindBlogRecipe:       "blog",
	KindEmailCampaign:    "email",
	KindPushNotification: "push",
}

// ChannelForKind resolves the campaign artifact channel for a blueprint kind.
func ChannelForKind(kind BlueprintKind) string {
	if ch, ok := kindChannels[kind]; ok {
		return ch
	}
	return DefaultArtifactChannel
}
