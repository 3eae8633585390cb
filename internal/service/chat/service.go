package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/Davooood90/rambl/backend/internal/model/chat"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyContent    = errors.New("turn content is empty")
)

// Service owns the in-memory conversation threads. Threads are append-only
// for the lifetime of a session and are never reordered or deduplicated;
// the record store keeps the durable summary once a session ends.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]chat.Session
	threads  map[string][]chat.Turn
}

// NewService bootstraps the in-memory thread store.
func NewService() *Service {
	return &Service{
		sessions: make(map[string]chat.Session),
		threads:  make(map[string][]chat.Turn),
	}
}

// CreateSession provisions a session bound to an already-resolved preset.
func (s *Service) CreateSession(_ context.Context, presetID string) (chat.Session, error) {
	session := chat.Session{
		ID:        uuid.NewString(),
		PresetID:  presetID,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.threads[session.ID] = make([]chat.Turn, 0, 16)
	s.mu.Unlock()

	return session, nil
}

// AppendTurn adds one turn to the end of the session's thread, stamping an
// id and timestamp when the caller did not.
func (s *Service) AppendTurn(_ context.Context, sessionID string, turn chat.Turn) error {
	if turn.Content == "" {
		return ErrEmptyContent
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}

	if turn.ID == "" {
		turn.ID = uuid.NewString()
	}
	if turn.Timestamp.IsZero() {
		turn.Timestamp = time.Now().UTC()
	}

	s.threads[sessionID] = append(s.threads[sessionID], turn)
	return nil
}

// GetSession retrieves a session by identifier.
func (s *Service) GetSession(_ context.Context, sessionID string) (chat.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return chat.Session{}, ErrSessionNotFound
	}
	return session, nil
}

// Transcript returns a copy of the session's thread in append order.
func (s *Service) Transcript(_ context.Context, sessionID string) ([]chat.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns, ok := s.threads[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	copied := make([]chat.Turn, len(turns))
	copy(copied, turns)
	return copied, nil
}

// EndSession removes the ephemeral thread and returns its final transcript.
func (s *Service) EndSession(_ context.Context, sessionID string) ([]chat.Turn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns, ok := s.threads[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	delete(s.sessions, sessionID)
	delete(s.threads, sessionID)
	return turns, nil
}
