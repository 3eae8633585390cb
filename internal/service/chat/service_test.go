package chat_test

import (
	"context"
	"testing"

	chatmodel "github.com/Davooood90/rambl/backend/internal/model/chat"
	chat "github.com/Davooood90/rambl/backend/internal/service/chat"
)

func TestServiceGetSession(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, "soothing")
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	got, err := svc.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession err: %v", err)
	}

	if got.ID != session.ID {
		t.Fatalf("unexpected session ID: got %s want %s", got.ID, session.ID)
	}
	if got.PresetID != "soothing" {
		t.Fatalf("unexpected preset ID: got %s", got.PresetID)
	}
}

func TestServiceGetSessionNotFound(t *testing.T) {
	svc := chat.NewService()

	if _, err := svc.GetSession(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for missing session")
	}
}

func TestAppendTurnPreservesOrder(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, "soothing")
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	contents := []string{"first", "second", "third"}
	for _, content := range contents {
		if err := svc.AppendTurn(ctx, session.ID, chatmodel.NewTurn(chatmodel.RoleUser, content)); err != nil {
			t.Fatalf("AppendTurn err: %v", err)
		}
	}

	turns, err := svc.Transcript(ctx, session.ID)
	if err != nil {
		t.Fatalf("Transcript err: %v", err)
	}
	if len(turns) != len(contents) {
		t.Fatalf("expected %d turns, got %d", len(contents), len(turns))
	}
	for i, content := range contents {
		if turns[i].Content != content {
			t.Fatalf("turn %d: got %q want %q", i, turns[i].Content, content)
		}
		if turns[i].ID == "" || turns[i].Timestamp.IsZero() {
			t.Fatalf("turn %d missing id or timestamp", i)
		}
	}
}

func TestAppendTurnValidation(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, "soothing")
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	if err := svc.AppendTurn(ctx, session.ID, chatmodel.Turn{Role: chatmodel.RoleUser}); err != chat.ErrEmptyContent {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
	if err := svc.AppendTurn(ctx, "missing", chatmodel.NewTurn(chatmodel.RoleUser, "hi")); err != chat.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestTranscriptReturnsCopy(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx, "soothing")
	if err := svc.AppendTurn(ctx, session.ID, chatmodel.NewTurn(chatmodel.RoleUser, "original")); err != nil {
		t.Fatalf("AppendTurn err: %v", err)
	}

	turns, _ := svc.Transcript(ctx, session.ID)
	turns[0].Content = "mutated"

	again, _ := svc.Transcript(ctx, session.ID)
	if again[0].Content != "original" {
		t.Fatal("Transcript must return a copy of the thread")
	}
}

func TestEndSessionRemovesThread(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx, "soothing")
	if err := svc.AppendTurn(ctx, session.ID, chatmodel.NewTurn(chatmodel.RoleUser, "bye")); err != nil {
		t.Fatalf("AppendTurn err: %v", err)
	}

	turns, err := svc.EndSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("EndSession err: %v", err)
	}
	if len(turns) != 1 || turns[0].Content != "bye" {
		t.Fatalf("unexpected final transcript: %+v", turns)
	}

	if _, err := svc.GetSession(ctx, session.ID); err != chat.ErrSessionNotFound {
		t.Fatalf("session should be gone, got %v", err)
	}
	if _, err := svc.Transcript(ctx, session.ID); err != chat.ErrSessionNotFound {
		t.Fatalf("thread should be gone, got %v", err)
	}
}
