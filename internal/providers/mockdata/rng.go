// Package mockdata produces repeatable demo data without calling a real
// model. Every provider is a pure function of its arguments: the same inputs
// return the same outputs across calls and process restarts, which keeps UI
// demos and tests reproducible.
package mockdata

import (
	"math"
	"strings"
)

// Hash is the shared 32-bit rolling multiply-add string hash. It is the
// contract the providers are built on; swapping it changes every score.
// The sign bit is masked off rather than negated: negation overflows when
// the rolling value lands exactly on math.MinInt32.
func Hash(s string) int32 {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}
	return h & math.MaxInt32
}

// Rng is a deterministic generator seeded by a string. It is not a real RNG
// and must never back production randomness; inject a true source there.
type Rng struct {
	seed string
}

func NewRng(seed string) *Rng {
	return &Rng{seed: seed}
}

// Intn returns a stable value in [0, n) for the seed and key.
func (r *Rng) Intn(key string, n int) int {
	if n <= 0 {
		return 0
	}
	return int(Hash(r.seed+"|"+key)) % n
}

// Float64 returns a stable value in [0, 1) for the seed and key.
func (r *Rng) Float64(key string) float64 {
	return float64(r.Intn(key, 10000)) / 10000
}

// Pick returns a stable element of items for the seed and key.
func (r *Rng) Pick(key string, items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[r.Intn(key, len(items))]
}

// Score returns base + (hash mod spread)/divisor, the canonical shape for
// mock numeric scores.
func (r *Rng) Score(key string, base float64, spread int, divisor float64) float64 {
	if spread <= 0 || divisor == 0 {
		return base
	}
	return base + float64(r.Intn(key, spread))/divisor
}

func joinArgs(args ...string) string {
	return strings.Join(args, "|")
}
