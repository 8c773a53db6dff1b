package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestBlueprintsSeedIsIdempotent(t *testing.T) {
	repo := &fakeBlueprintRepo{}
	app := &App{Blueprints: repo, Logger: zerolog.Nop()}

	seed := func() int {
		req := httptest.NewRequest("POST", "/content/blueprints/seed", nil)
		rr := httptest.NewRecorder()
		app.BlueprintsSeed(rr, req)
		if rr.Code != 200 {
			t.Fatalf("unexpected status code: got %d, want 200", rr.Code)
		}
		var payload struct {
			Inserted int `json:"inserted"`
		}
		if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		return payload.Inserted
	}

	if first := seed(); first != 5 {
		t.Fatalf("first seed inserted %d, want 5", first)
	}
	if second := seed(); second != 0 {
		t.Fatalf("second seed inserted %d, want 0", second)
	}
	if len(repo.blueprints) != 5 {
		t.Fatalf("catalog holds %d blueprints, want 5", len(repo.blueprints))
	}
}

func TestBlueprintsListReturnsCatalog(t *testing.T) {
	repo := &fakeBlueprintRepo{}
	app := &App{Blueprints: repo, Logger: zerolog.Nop()}

	seedReq := httptest.NewRequest("POST", "/content/blueprints/seed", nil)
	app.BlueprintsSeed(httptest.NewRecorder(), seedReq)

	req := httptest.NewRequest("GET", "/content/blueprints", nil)
	rr := httptest.NewRecorder()
	app.BlueprintsList(rr, req)

	if rr.Code != 200 {
		t.Fatalf("unexpected status code: got %d, want 200", rr.Code)
	}
	var payload struct {
		Items []map[string]any `json:"items"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Items) != 5 {
		t.Fatalf("expected 5 blueprints, got %d", len(payload.Items))
	}
	kinds := make(map[string]bool, len(payload.Items))
	for _, item := range payload.Items {
		kind, _ := item["kind"].(string)
		kinds[kind] = true
	}
	for _, want := range []string{"video_script_short", "social_carousel", "blog_recipe", "email_campaign", "push_notification"} {
		if !kinds[want] {
			t.Fatalf("catalog missing kind %q", want)
		}
	}
}
