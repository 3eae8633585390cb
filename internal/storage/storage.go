package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound signals an absent record; callers treat it as normal fallback.
var ErrNotFound = errors.New("record not found")

// Conversation is the durable trace of a finished session. The live thread
// stays in memory; this is what the dashboard reads.
type Conversation struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"created_at"`
	Title     string    `json:"title,omitempty"`
	Summary   string    `json:"summary,omitempty"`
	Words     []string  `json:"words,omitempty"`
	Intensity *int      `json:"intensity_score,omitempty"`
}

// ThemeCount tracks how often a recurring theme surfaced across sessions.
type ThemeCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Preferences is the per-user UI preference record.
type Preferences struct {
	UserID           string `json:"user_id"`
	BackgroundColour string `json:"background_colour,omitempty"`
	AvatarURL        string `json:"avatar_url,omitempty"`
}

// Storage is the record store boundary: conversation records, recurring
// theme counts, and UI preferences.
type Storage interface {
	SaveConversation(ctx context.Context, conv *Conversation) error
	RecentConversations(ctx context.Context, userID string, limit int) ([]Conversation, error)

	IncrementThemes(ctx context.Context, userID string, labels []string) error
	TopThemes(ctx context.Context, userID string, limit int) ([]ThemeCount, error)

	GetPreferences(ctx context.Context, userID string) (Preferences, error)
	SaveThemePreference(ctx context.Context, userID, themeName string) error
	SaveAvatar(ctx context.Context, userID, avatarURL string) error

	Close() error
}
