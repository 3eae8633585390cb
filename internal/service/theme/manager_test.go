package theme

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Davooood90/rambl/backend/internal/model/theme"
	"github.com/Davooood90/rambl/backend/internal/storage"
)

func newTestManager(t *testing.T) (*Manager, *storage.MemoryStorage, string) {
	t.Helper()
	cachePath := filepath.Join(t.TempDir(), "theme.json")
	store := storage.NewMemoryStorage()
	return NewManager(cachePath, store, zap.NewNop()), store, cachePath
}

func writeCacheFile(t *testing.T, path, name string) {
	t.Helper()
	data, _ := json.Marshal(cacheRecord{Theme: name})
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write cache: %v", err)
	}
}

func TestManagerStartsOnDefault(t *testing.T) {
	m, _, _ := newTestManager(t)
	if m.Active() != theme.Default {
		t.Fatalf("expected default theme, got %s", m.Active())
	}
}

func TestLoadAppliesCacheSynchronously(t *testing.T) {
	m, _, cachePath := newTestManager(t)
	writeCacheFile(t, cachePath, "mint")

	m.Load(context.Background(), "local")

	if m.Active() != "mint" {
		t.Fatalf("cached theme should apply before any remote read, got %s", m.Active())
	}
}

func TestLoadIgnoresUnknownCache(t *testing.T) {
	m, _, cachePath := newTestManager(t)
	writeCacheFile(t, cachePath, "neon")

	m.Load(context.Background(), "local")

	if m.Active() != theme.Default {
		t.Fatalf("unknown cached theme should be ignored, got %s", m.Active())
	}
}

func TestLoadIgnoresCorruptCache(t *testing.T) {
	m, _, cachePath := newTestManager(t)
	if err := os.WriteFile(cachePath, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write cache: %v", err)
	}

	m.Load(context.Background(), "local")

	if m.Active() != theme.Default {
		t.Fatalf("corrupt cache should be ignored, got %s", m.Active())
	}
}

func TestSyncRemoteOverwritesCache(t *testing.T) {
	m, store, cachePath := newTestManager(t)
	writeCacheFile(t, cachePath, "mint")
	if err := store.SaveThemePreference(context.Background(), "local", "lemon"); err != nil {
		t.Fatalf("seed preference: %v", err)
	}

	if name, err := m.readCache(); err != nil || !theme.Known(name) {
		t.Fatalf("readCache err: %v name %s", err, name)
	}
	m.syncRemote(context.Background(), "local")

	if m.Active() != "lemon" {
		t.Fatalf("remote preference should win, got %s", m.Active())
	}
	name, err := m.readCache()
	if err != nil {
		t.Fatalf("readCache after sync: %v", err)
	}
	if name != "lemon" {
		t.Fatalf("cache should be rewritten with the remote value, got %s", name)
	}
}

func TestSyncRemoteNoPreferenceKeepsLocal(t *testing.T) {
	m, _, _ := newTestManager(t)

	m.syncRemote(context.Background(), "local")

	if m.Active() != theme.Default {
		t.Fatalf("missing remote record should change nothing, got %s", m.Active())
	}
}

func TestSetRejectsUnknownTheme(t *testing.T) {
	m, _, _ := newTestManager(t)

	if err := m.Set("local", "neon"); !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme, got %v", err)
	}
	if m.Active() != theme.Default {
		t.Fatalf("rejected writes must not change the active theme, got %s", m.Active())
	}
}

func TestSetAppliesImmediatelyAndPersists(t *testing.T) {
	m, store, _ := newTestManager(t)

	if err := m.Set("local", "soft-blue"); err != nil {
		t.Fatalf("Set err: %v", err)
	}

	if m.Active() != "soft-blue" {
		t.Fatalf("Set should apply immediately, got %s", m.Active())
	}
	name, err := m.readCache()
	if err != nil || name != "soft-blue" {
		t.Fatalf("cache should be written synchronously: %s %v", name, err)
	}

	// The remote write runs in the background.
	deadline := time.Now().Add(2 * time.Second)
	for {
		prefs, err := store.GetPreferences(context.Background(), "local")
		if err == nil && prefs.BackgroundColour == "soft-blue" {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("remote preference never landed: %+v %v", prefs, err)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestColorsFollowActiveTheme(t *testing.T) {
	m, _, _ := newTestManager(t)

	if err := m.Set("local", "mint"); err != nil {
		t.Fatalf("Set err: %v", err)
	}
	if got := m.Colors().Accent; got != "#4FD18B" {
		t.Fatalf("unexpected mint accent: %s", got)
	}
}
