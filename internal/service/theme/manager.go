package theme

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Davooood90/rambl/backend/internal/model/theme"
	"github.com/Davooood90/rambl/backend/internal/storage"
)

// ErrUnknownTheme rejects theme names outside the catalog.
var ErrUnknownTheme = errors.New("unknown theme")

const remoteWriteTimeout = 5 * time.Second

type cacheRecord struct {
	Theme string `json:"theme"`
}

// Manager holds the process-wide active theme with dual-layer persistence:
// a local cache file applied synchronously on load, and the remote
// preference record applied asynchronously when it arrives. The two may
// transiently disagree; last writer wins.
type Manager struct {
	mu        sync.RWMutex
	active    string
	cachePath string
	store     storage.Storage
	logger    *zap.Logger
}

// NewManager starts on the default theme until Load runs.
func NewManager(cachePath string, store storage.Storage, logger *zap.Logger) *Manager {
	return &Manager{
		active:    theme.Default,
		cachePath: cachePath,
		store:     store,
		logger:    logger,
	}
}

// Load reads the local cache synchronously and kicks off the remote read in
// the background; the remote value overwrites the cache if present.
func (m *Manager) Load(ctx context.Context, userID string) {
	if name, err := m.readCache(); err == nil && theme.Known(name) {
		m.mu.Lock()
		m.active = name
		m.mu.Unlock()
	}

	go m.syncRemote(ctx, userID)
}

// syncRemote fetches the remote preference and applies it over the local
// value when present.
func (m *Manager) syncRemote(ctx context.Context, userID string) {
	prefs, err := m.store.GetPreferences(ctx, userID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			m.logger.Warn("failed to load remote theme preference", zap.Error(err))
		}
		return
	}
	if !theme.Known(prefs.BackgroundColour) {
		return
	}

	m.mu.Lock()
	m.active = prefs.BackgroundColour
	m.mu.Unlock()

	if err := m.writeCache(prefs.BackgroundColour); err != nil {
		m.logger.Warn("failed to update theme cache", zap.Error(err))
	}
}

// Set applies a theme immediately (memory plus cache file) and writes the
// remote record in the background.
func (m *Manager) Set(userID, name string) error {
	if !theme.Known(name) {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}

	m.mu.Lock()
	m.active = name
	m.mu.Unlock()

	if err := m.writeCache(name); err != nil {
		m.logger.Warn("failed to write theme cache", zap.Error(err))
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), remoteWriteTimeout)
		defer cancel()
		if err := m.store.SaveThemePreference(ctx, userID, name); err != nil {
			m.logger.Warn("failed to save remote theme preference", zap.Error(err))
		}
	}()

	return nil
}

// Active returns the current theme name.
func (m *Manager) Active() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.active
}

// Colors returns the active theme's palette.
func (m *Manager) Colors() theme.Colors {
	return theme.Palette(m.Active())
}

func (m *Manager) readCache() (string, error) {
	data, err := os.ReadFile(m.cachePath)
	if err != nil {
		return "", err
	}

	var record cacheRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return "", err
	}
	return record.Theme, nil
}

func (m *Manager) writeCache(name string) error {
	data, err := json.Marshal(cacheRecord{Theme: name})
	if err != nil {
		return err
	}
	return os.WriteFile(m.cachePath, data, 0o644)
}
