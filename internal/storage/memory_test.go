package storage

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSaveConversationStampsFields(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	conv := &Conversation{UserID: "local", Summary: "a calm evening"}
	if err := store.SaveConversation(ctx, conv); err != nil {
		t.Fatalf("SaveConversation err: %v", err)
	}

	if conv.ID == "" {
		t.Fatal("expected generated id")
	}
	if conv.CreatedAt.IsZero() {
		t.Fatal("expected stamped creation time")
	}
}

func TestRecentConversationsNewestFirst(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		conv := &Conversation{
			UserID:    "local",
			Title:     string(rune('a' + i)),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := store.SaveConversation(ctx, conv); err != nil {
			t.Fatalf("SaveConversation err: %v", err)
		}
	}

	records, err := store.RecentConversations(ctx, "local", 5)
	if err != nil {
		t.Fatalf("RecentConversations err: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("expected limit of 5, got %d", len(records))
	}
	if records[0].Title != "g" || records[4].Title != "c" {
		t.Fatalf("expected newest first, got %s..%s", records[0].Title, records[4].Title)
	}
}

func TestRecentConversationsIsolatedPerUser(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	store.SaveConversation(ctx, &Conversation{UserID: "alice"})

	records, err := store.RecentConversations(ctx, "bob", 5)
	if err != nil {
		t.Fatalf("RecentConversations err: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records for bob, got %d", len(records))
	}
}

func TestTopThemesOrdering(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	store.IncrementThemes(ctx, "local", []string{"Work", "Sleep", "Work"})
	store.IncrementThemes(ctx, "local", []string{"Work", "Family", "Sleep"})

	themes, err := store.TopThemes(ctx, "local", 2)
	if err != nil {
		t.Fatalf("TopThemes err: %v", err)
	}
	if len(themes) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(themes))
	}
	if themes[0].Label != "Work" || themes[0].Count != 3 {
		t.Fatalf("expected Work x3 on top, got %+v", themes[0])
	}
	if themes[1].Label != "Sleep" || themes[1].Count != 2 {
		t.Fatalf("expected Sleep x2 second, got %+v", themes[1])
	}
}

func TestTopThemesTieBreaksByLabel(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	store.IncrementThemes(ctx, "local", []string{"Zebra", "Apple"})

	themes, err := store.TopThemes(ctx, "local", 0)
	if err != nil {
		t.Fatalf("TopThemes err: %v", err)
	}
	if themes[0].Label != "Apple" {
		t.Fatalf("equal counts should order by label, got %+v", themes)
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	if _, err := store.GetPreferences(ctx, "local"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before writes, got %v", err)
	}

	if err := store.SaveThemePreference(ctx, "local", "mint"); err != nil {
		t.Fatalf("SaveThemePreference err: %v", err)
	}
	if err := store.SaveAvatar(ctx, "local", "https://example.com/a.png"); err != nil {
		t.Fatalf("SaveAvatar err: %v", err)
	}

	prefs, err := store.GetPreferences(ctx, "local")
	if err != nil {
		t.Fatalf("GetPreferences err: %v", err)
	}
	if prefs.BackgroundColour != "mint" {
		t.Fatalf("unexpected theme: %s", prefs.BackgroundColour)
	}
	if prefs.AvatarURL != "https://example.com/a.png" {
		t.Fatalf("avatar write should not clobber theme and vice versa, got %+v", prefs)
	}
}
