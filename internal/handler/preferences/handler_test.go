package preferences

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	thememanager "github.com/Davooood90/rambl/backend/internal/service/theme"
	"github.com/Davooood90/rambl/backend/internal/storage"
)

func setupRouter(t *testing.T) (*chi.Mux, *storage.MemoryStorage) {
	t.Helper()

	store := storage.NewMemoryStorage()
	themes := thememanager.NewManager(filepath.Join(t.TempDir(), "theme.json"), store, zap.NewNop())

	handler := New(themes, store, zap.NewNop())
	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, store
}

func TestGetPreferencesDefaults(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/preferences", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body struct {
		Theme     string         `json:"theme"`
		Colors    map[string]any `json:"colors"`
		AvatarURL string         `json:"avatarUrl"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Theme != "classic" {
		t.Fatalf("expected classic default, got %s", body.Theme)
	}
	if body.Colors["accent"] != "#FF8FA3" {
		t.Fatalf("unexpected accent: %v", body.Colors["accent"])
	}
	if body.AvatarURL != "" {
		t.Fatalf("expected empty avatar, got %q", body.AvatarURL)
	}
}

func TestSetTheme(t *testing.T) {
	r, store := setupRouter(t)

	payload, _ := json.Marshal(map[string]string{"theme": "mint"})
	req := httptest.NewRequest(http.MethodPut, "/preferences/theme", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Theme string `json:"theme"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Theme != "mint" {
		t.Fatalf("expected mint active, got %s", body.Theme)
	}

	// The remote record lands in the background.
	deadline := time.Now().Add(2 * time.Second)
	for {
		prefs, err := store.GetPreferences(context.Background(), "local")
		if err == nil && prefs.BackgroundColour == "mint" {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("remote preference never landed: %+v %v", prefs, err)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestSetThemeUnknown(t *testing.T) {
	r, _ := setupRouter(t)

	payload, _ := json.Marshal(map[string]string{"theme": "neon"})
	req := httptest.NewRequest(http.MethodPut, "/preferences/theme", bytes.NewReader(payload))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestSetAvatar(t *testing.T) {
	r, store := setupRouter(t)

	payload, _ := json.Marshal(map[string]string{"avatarUrl": "https://example.com/me.png"})
	req := httptest.NewRequest(http.MethodPut, "/preferences/avatar", bytes.NewReader(payload))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	prefs, err := store.GetPreferences(context.Background(), "local")
	if err != nil {
		t.Fatalf("GetPreferences err: %v", err)
	}
	if prefs.AvatarURL != "https://example.com/me.png" {
		t.Fatalf("unexpected avatar: %s", prefs.AvatarURL)
	}
}

func TestSetAvatarMissingURL(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/preferences/avatar", bytes.NewReader([]byte(`{}`)))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
