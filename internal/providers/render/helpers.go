package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

func buildRenderPrompt(req Request) string {
	src, _ := json.Marshal(req.Source)
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "You are a food-content copywriter. Respond strictly with a single JSON object shaped like the %q content kind. ", req.Kind)
	fmt.Fprintf(sb, "Recipe source: %s. ", src)
	fmt.Fprintf(sb, "Write for persona %q in a %q tone for %q, target duration %q, call to action %q. ",
		req.Options.Persona, req.Options.Tone, req.Options.Platform, req.Options.Duration, req.Options.CTA)
	sb.WriteString("Do not wrap the JSON in markdown fences or add commentary.")
	return sb.String()
}

func parseRenderedObject(raw string) (map[string]any, error) {
	cleaned := extractJSONFragment(raw)
	if cleaned == "" {
		return nil, errors.New("empty payload")
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		return nil, err
	}
	return decoded, nil
}

func extractJSONFragment(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}
	text = trimCodeFence(text)
	start := strings.IndexAny(text, "{[")
	end := strings.LastIndexAny(text, "]}")
	if start >= 0 && end >= start {
		text = text[start : end+1]
	}
	return strings.TrimSpace(text)
}

func trimCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```JSON")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}
