package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStorage keeps records in process memory. Suitable for development
// and tests; nothing survives a restart.
type MemoryStorage struct {
	mu            sync.RWMutex
	conversations map[string][]Conversation
	themes        map[string]map[string]int
	preferences   map[string]Preferences
}

// NewMemoryStorage returns an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		conversations: make(map[string][]Conversation),
		themes:        make(map[string]map[string]int),
		preferences:   make(map[string]Preferences),
	}
}

// SaveConversation appends a conversation record, stamping id and creation
// time when absent.
func (s *MemoryStorage) SaveConversation(_ context.Context, conv *Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conv.ID == "" {
		conv.ID = uuid.NewString()
	}
	if conv.CreatedAt.IsZero() {
		conv.CreatedAt = time.Now().UTC()
	}
	s.conversations[conv.UserID] = append(s.conversations[conv.UserID], *conv)
	return nil
}

// RecentConversations returns up to limit records, newest first.
func (s *MemoryStorage) RecentConversations(_ context.Context, userID string, limit int) ([]Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := append([]Conversation(nil), s.conversations[userID]...)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// IncrementThemes bumps the count for each label.
func (s *MemoryStorage) IncrementThemes(_ context.Context, userID string, labels []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := s.themes[userID]
	if counts == nil {
		counts = make(map[string]int)
		s.themes[userID] = counts
	}
	for _, label := range labels {
		counts[label]++
	}
	return nil
}

// TopThemes returns up to limit themes ordered by descending count.
func (s *MemoryStorage) TopThemes(_ context.Context, userID string, limit int) ([]ThemeCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make([]ThemeCount, 0, len(s.themes[userID]))
	for label, count := range s.themes[userID] {
		counts = append(counts, ThemeCount{Label: label, Count: count})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Label < counts[j].Label
	})
	if limit > 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	return counts, nil
}

// GetPreferences returns the stored preference record or ErrNotFound.
func (s *MemoryStorage) GetPreferences(_ context.Context, userID string) (Preferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prefs, ok := s.preferences[userID]
	if !ok {
		return Preferences{}, ErrNotFound
	}
	return prefs, nil
}

// SaveThemePreference upserts the background colour preference.
func (s *MemoryStorage) SaveThemePreference(_ context.Context, userID, themeName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs := s.preferences[userID]
	prefs.UserID = userID
	prefs.BackgroundColour = themeName
	s.preferences[userID] = prefs
	return nil
}

// SaveAvatar upserts the avatar URL preference.
func (s *MemoryStorage) SaveAvatar(_ context.Context, userID, avatarURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs := s.preferences[userID]
	prefs.UserID = userID
	prefs.AvatarURL = avatarURL
	s.preferences[userID] = prefs
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStorage) Close() error { return nil }
