package postprocess

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"server/internal/domain"
)

type enhancerFunc func(content map[string]any, meta map[string]any)

// Enhancement logic is selected by blueprint kind; kinds missing from this
// map get the generic recipe metadata only.
var enhancers = map[domain.BlueprintKind]enhancerFunc{
	domain.KindVideoScriptShort: enhanceVideoScript,
	domain.KindBlogRecipe:       enhanceBlog,
	domain.KindEmailCampaign:    enhanceEmail,
}

func enhance(content map[string]any, ctx Context) map[string]any {
	meta := baseMetadata(ctx)

	kind := domain.BlueprintKind("")
	if ctx.Blueprint != nil {
		kind = ctx.Blueprint.Kind
	}
	if fn, ok := enhancers[kind]; ok {
		fn(content, meta)
	} else {
		meta["recipeTitle"] = ctx.Source.Title
		meta["recipeTime"] = ctx.Source.Time
	}

	content[domain.MetadataKey] = meta
	return content
}

var trailingSecondsPattern = regexp.MustCompile(`(\d+)\s*s?\s*$`)

func enhanceVideoScript(content map[string]any, meta map[string]any) {
	beats, _ := content["beats"].([]any)
	for i, item := range beats {
		beat, ok := item.(map[string]any)
		if !ok {
			continue
		}
		beat["sequence"] = i + 1
		beat["isHook"] = i == 0
		beat["isCTA"] = i == len(beats)-1
	}
	if len(beats) > 0 {
		if last, ok := beats[len(beats)-1].(map[string]any); ok {
			if tc, ok := last["time"].(string); ok {
				if m := trailingSecondsPattern.FindStringSubmatch(tc); m != nil {
					if secs, err := strconv.Atoi(m[1]); err == nil {
						meta["estimatedDurationSeconds"] = secs
					}
				}
			}
		}
	}
	if tags, ok := content["hashtags"].([]any); ok {
		for i, item := range tags {
			tag, ok := item.(string)
			if !ok {
				continue
			}
			tag = strings.TrimSpace(tag)
			if tag != "" && !strings.HasPrefix(tag, "#") {
				tag = "#" + tag
			}
			tags[i] = tag
		}
	}
	meta["beatCount"] = len(beats)
}

const wordsPerSection = 150

const maxMetaDescriptionLength = 160

func enhanceBlog(content map[string]any, meta map[string]any) {
	sections, _ := content["sections"].([]any)
	meta["estimatedWordCount"] = wordsPerSection * len(sections)
	if desc, ok := content["metaDescription"].(string); ok && utf8.RuneCountInString(desc) > maxMetaDescriptionLength {
		runes := []rune(desc)
		content["metaDescription"] = string(runes[:maxMetaDescriptionLength-3]) + "..."
	}
	_, hasSchema := content["schemaMarkup"]
	meta["hasSchemaMarkup"] = hasSchema
}

const (
	maxSubjectLength   = 50
	fallbackPreheader  = "Something tasty is waiting inside."
	spamWordPenalty    = 10
	preheaderBonus     = 5
	shortSubjectBonus  = 5
	deliverabilityBase = 100
)

var spamTriggerWords = []string{
	"free",
	"buy now",
	"limited time",
	"act now",
	"click here",
	"winner",
	"guarantee",
	"no risk",
	"cash",
	"urgent",
}

func enhanceEmail(content map[string]any, meta map[string]any) {
	subject, _ := content["subject"].(string)
	// Subject limits are in characters, not bytes.
	subjectLen := utf8.RuneCountInString(subject)
	if subjectLen > maxSubjectLength {
		meta["subjectLineWarning"] = true
	}

	preheader, _ := content["preheader"].(string)
	hadPreheader := strings.TrimSpace(preheader) != ""
	if !hadPreheader {
		content["preheader"] = fallbackPreheader
	}

	serialized, _ := json.Marshal(content)
	haystack := strings.ToLower(string(serialized))
	score := deliverabilityBase
	for _, word := range spamTriggerWords {
		if strings.Contains(haystack, word) {
			score -= spamWordPenalty
		}
	}
	if hadPreheader {
		score += preheaderBonus
	}
	if subjectLen <= maxSubjectLength {
		score += shortSubjectBonus
	}
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	meta["deliverabilityScore"] = score
}
