package gencfg

import (
	"fmt"
	"sort"
	"strings"

	"server/internal/domain"
)

// GenerationOptions is the JSON options contract accepted by preview and
// generate requests. Every field is constrained to a fixed enumeration.
type GenerationOptions struct {
	Persona  string `json:"persona"`
	Tone     string `json:"tone"`
	Platform string `json:"platform"`
	Duration string `json:"duration"`
	CTA      string `json:"cta"`
}

const (
	// DefaultPersona is applied when the request omits the persona.
	DefaultPersona = "Chef"
	// DefaultTone is applied when the request omits the tone.
	DefaultTone = "Friendly"
	// DefaultPlatform is applied when the request omits the platform.
	DefaultPlatform = "TikTok"
	// DefaultDuration is applied when the request omits the duration.
	DefaultDuration = "30s"
	// DefaultCTA is applied when the request omits the call to action.
	DefaultCTA = "App install"
)

var allowedPersonas = map[string]struct{}{
	"Chef":        {},
	"Busy Parent": {},
	"College":     {},
	"Vegan":       {},
	"Athlete":     {},
}

var allowedTones = map[string]struct{}{
	"Friendly":     {},
	"Professional": {},
	"Playful":      {},
	"Bold":         {},
}

var allowedPlatforms = map[string]struct{}{
	"TikTok":    {},
	"Instagram": {},
	"YouTube":   {},
	"Facebook":  {},
}

var allowedDurations = map[string]struct{}{
	"15s": {},
	"30s": {},
	"60s": {},
}

var allowedCTAs = map[string]struct{}{
	"App install": {},
	"Newsletter":  {},
	"Follow":      {},
	"Visit site":  {},
}

// Normalize fills defaults for omitted fields. Values that are present but
// unrecognized are kept; the voice/tone/platform guides resolve them to a
// documented fallback at render time.
func (o *GenerationOptions) Normalize() {
	if o == nil {
		return
	}
	if strings.TrimSpace(o.Persona) == "" {
		o.Persona = DefaultPersona
	}
	if strings.TrimSpace(o.Tone) == "" {
		o.Tone = DefaultTone
	}
	if strings.TrimSpace(o.Platform) == "" {
		o.Platform = DefaultPlatform
	}
	if strings.TrimSpace(o.Duration) == "" {
		o.Duration = DefaultDuration
	}
	if strings.TrimSpace(o.CTA) == "" {
		o.CTA = DefaultCTA
	}
}

// Validate ensures every option is one of its enumerated values. Failures
// wrap domain.ErrInvalidOptions. Callers must Normalize first so omitted
// fields carry defaults.
func (o GenerationOptions) Validate() error {
	if _, ok := allowedPersonas[o.Persona]; !ok {
		return fmt.Errorf("%w: persona must be one of %s", domain.ErrInvalidOptions, joinKeys(allowedPersonas))
	}
	if _, ok := allowedTones[o.Tone]; !ok {
		return fmt.Errorf("%w: tone must be one of %s", domain.ErrInvalidOptions, joinKeys(allowedTones))
	}
	if _, ok := allowedPlatforms[o.Platform]; !ok {
		return fmt.Errorf("%w: platform must be one of %s", domain.ErrInvalidOptions, joinKeys(allowedPlatforms))
	}
	if _, ok := allowedDurations[o.Duration]; !ok {
		return fmt.Errorf("%w: duration must be one of %s", domain.ErrInvalidOptions, joinKeys(allowedDurations))
	}
	if _, ok := allowedCTAs[o.CTA]; !ok {
		return fmt.Errorf("%w: cta must be one of %s", domain.ErrInvalidOptions, joinKeys(allowedCTAs))
	}
	return nil
}

func joinKeys(set map[string]struct{}) string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
