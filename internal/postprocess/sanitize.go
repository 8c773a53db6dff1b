package postprocess

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MaxStringLength is the hard cap applied to every string leaf.
	MaxStringLength = 10000
	truncateTarget  = 9997
)

var (
	scriptBlockPattern = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	scriptTagPattern   = regexp.MustCompile(`(?i)</?script\b[^>]*>`)
	jsURIPattern       = regexp.MustCompile(`(?i)javascript:`)
	eventAttrPattern   = regexp.MustCompile(`(?i)\son[a-z]+\s*=\s*("[^"]*"|'[^']*'|[^\s>]+)`)
	whitespacePattern  = regexp.MustCompile(`\s{2,}`)
)

// sanitizeObject walks the content and scrubs every string leaf.
func sanitizeObject(content map[string]any) map[string]any {
	cleaned, _ := sanitizeValue(content).(map[string]any)
	return cleaned
}

func sanitizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = sanitizeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = sanitizeValue(item)
		}
		return out
	case string:
		return sanitizeString(v)
	default:
		return v
	}
}

func sanitizeString(s string) string {
	s = scriptBlockPattern.ReplaceAllString(s, "")
	s = scriptTagPattern.ReplaceAllString(s, "")
	s = jsURIPattern.ReplaceAllString(s, "")
	s = eventAttrPattern.ReplaceAllString(s, "")
	s = whitespacePattern.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	if len(s) > MaxStringLength {
		cut := truncateTarget
		// Back up so the cut never splits a multibyte rune.
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + "..."
	}
	return s
}
