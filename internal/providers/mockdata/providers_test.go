package mockdata

import (
	"reflect"
	"testing"
)

func TestHashStableAndNonNegative(t *testing.T) {
	inputs := []string{"", "a", "garlic pasta", "TikTok|30s", "😀 unicode"}
	for _, in := range inputs {
		first := Hash(in)
		second := Hash(in)
		if first != second {
			t.Fatalf("Hash(%q) unstable: %d vs %d", in, first, second)
		}
		if first < 0 {
			t.Fatalf("Hash(%q) = %d, want non-negative", in, first)
		}
	}
	if Hash("a") == Hash("b") {
		t.Fatal("distinct inputs should usually hash differently")
	}
}

func TestHashSignBitOverflowStaysInBounds(t *testing.T) {
	// This input's rolling value lands exactly on math.MinInt32, where
	// negating would overflow back to a negative number and send Pick out
	// of range.
	if got := Hash("sentiment|zxlx213e|label"); got < 0 {
		t.Fatalf("Hash = %d, want non-negative", got)
	}

	res := Sentiment("zxlx213e")
	switch res.Label {
	case "positive", "neutral", "negative":
	default:
		t.Fatalf("Sentiment label = %q, want a known label", res.Label)
	}
	if res.Confidence < 0 || res.Confidence > 1 {
		t.Fatalf("Sentiment confidence = %v, out of bounds", res.Confidence)
	}
}

func TestRngDeterministic(t *testing.T) {
	a := NewRng("seed-1")
	b := NewRng("seed-1")
	if a.Intn("k", 100) != b.Intn("k", 100) {
		t.Fatal("Intn differs for identical seed and key")
	}
	if a.Float64("f") != b.Float64("f") {
		t.Fatal("Float64 differs for identical seed and key")
	}
	if got := a.Intn("k", 0); got != 0 {
		t.Fatalf("Intn with n=0 = %d", got)
	}
}

func TestProvidersReturnIdenticalResponsesForIdenticalArgs(t *testing.T) {
	if !reflect.DeepEqual(ViralScore("Garlic Pasta", "TikTok"), ViralScore("Garlic Pasta", "TikTok")) {
		t.Fatal("ViralScore not deterministic")
	}
	if !reflect.DeepEqual(Sentiment("loved this recipe"), Sentiment("loved this recipe")) {
		t.Fatal("Sentiment not deterministic")
	}
	if !reflect.DeepEqual(SuggestHashtags("garlic pasta", 4), SuggestHashtags("garlic pasta", 4)) {
		t.Fatal("SuggestHashtags not deterministic")
	}
	if !reflect.DeepEqual(Engagement("TikTok", 5000), Engagement("TikTok", 5000)) {
		t.Fatal("Engagement not deterministic")
	}
}

func TestViralScoreBounds(t *testing.T) {
	for _, title := range []string{"", "a", "Garlic Butter Pasta", "Midnight Ramen"} {
		res := ViralScore(title, "Instagram")
		if res.Score < 0 || res.Score > 100 {
			t.Fatalf("ViralScore(%q) = %v, out of bounds", title, res.Score)
		}
	}
}

func TestSuggestHashtagsShape(t *testing.T) {
	tags := SuggestHashtags("Garlic Pasta", 3)
	if len(tags) != 3 {
		t.Fatalf("len = %d, want 3", len(tags))
	}
	for _, tag := range tags {
		if tag == "" || tag[0] != '#' {
			t.Fatalf("tag %q missing leading #", tag)
		}
	}
	if got := SuggestHashtags("x", 0); len(got) != 0 {
		t.Fatalf("n=0 should return empty, got %#v", got)
	}
	if got := SuggestHashtags("x", 99); len(got) > 6 {
		t.Fatalf("n beyond pool should clamp, got %d", len(got))
	}
}
