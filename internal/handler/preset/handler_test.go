package preset

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/Davooood90/rambl/backend/internal/model/preset"
	"github.com/Davooood90/rambl/backend/internal/model/voice"
)

func setupRouter() *chi.Mux {
	handler := New(preset.NewMemoryStore(preset.Seed()), voice.NewRegistry(voice.Seed()))
	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestListPresets(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/presets", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var presets []map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &presets); err != nil {
		t.Fatalf("decode presets: %v", err)
	}
	if len(presets) != 4 {
		t.Fatalf("expected 4 presets, got %d", len(presets))
	}
	if presets[0]["id"] != "soothing" {
		t.Fatalf("expected soothing first, got %v", presets[0]["id"])
	}
	for _, p := range presets {
		if _, leaked := p["SystemPrompt"]; leaked {
			t.Fatalf("system prompt must not serialize: %+v", p)
		}
	}
}

func TestListVoices(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/voices", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var voices []voice.Config
	if err := json.Unmarshal(resp.Body.Bytes(), &voices); err != nil {
		t.Fatalf("decode voices: %v", err)
	}
	if len(voices) != 4 {
		t.Fatalf("expected 4 voices, got %d", len(voices))
	}
	if voices[0].Name != "Lily" {
		t.Fatalf("expected Lily first, got %s", voices[0].Name)
	}
}
