package insight

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Davooood90/rambl/backend/internal/analysis/keywords"
	"github.com/Davooood90/rambl/backend/internal/analysis/mood"
	"github.com/Davooood90/rambl/backend/internal/model/chat"
	"github.com/Davooood90/rambl/backend/internal/model/insight"
	"github.com/Davooood90/rambl/backend/internal/service/ai"
	"github.com/Davooood90/rambl/backend/internal/storage"
)

// summaryPreset is the personality used for the one-shot session summary.
const summaryPreset = "soothing"

// summaryFallback replaces the summary whenever the completion service
// fails; the summary is never left blank.
const summaryFallback = "You took time to reflect and share your thoughts today. " +
	"That takes courage. Remember, every conversation is a step toward understanding yourself better."

const summaryPromptTemplate = `Please provide a brief, compassionate 2-3 sentence summary ` +
	`of what this person shared and how they might be feeling. Here's what they said: %q`

// Dashboard limits mirroring the product UI.
const (
	recentSessionLimit = 5
	topThemeLimit      = 6
)

// Service derives session analytics from finished threads and serves the
// dashboard aggregates from the record store.
type Service struct {
	gateway *ai.Gateway
	store   storage.Storage
	logger  *zap.Logger
}

// NewService wires analytics to the completion gateway and record store.
func NewService(gateway *ai.Gateway, store storage.Storage, logger *zap.Logger) *Service {
	return &Service{gateway: gateway, store: store, logger: logger}
}

// Analyze derives keywords, a compassionate summary, and a mood intensity
// from one finished thread. Idempotent for keywords and intensity; the
// summary depends on the external service but degrades to a fixed message.
// accent leads the keyword color palette.
func (s *Service) Analyze(ctx context.Context, turns []chat.Turn, accent string) insight.Overview {
	userContent := joinUserTurns(turns)

	overview := insight.Overview{
		Keywords:  keywords.Extract(userContent, accent),
		Intensity: mood.Intensity(userContent),
		Summary:   summaryFallback,
	}

	if strings.TrimSpace(userContent) == "" || s.gateway == nil {
		return overview
	}

	prompt := fmt.Sprintf(summaryPromptTemplate, userContent)
	reply, err := s.gateway.SendTurnWithFallback(ctx, nil, prompt, summaryPreset, summaryFallback)
	if err != nil {
		s.logger.Warn("summary generation rejected", zap.Error(err))
		return overview
	}
	overview.Summary = reply.Content
	return overview
}

// Record persists the conversation record and bumps the recurring theme
// counts that feed the dashboard.
func (s *Service) Record(ctx context.Context, userID, title string, overview insight.Overview) (*storage.Conversation, error) {
	words := make([]string, 0, len(overview.Keywords))
	for _, kw := range overview.Keywords {
		words = append(words, kw.Text)
	}

	intensity := overview.Intensity
	conv := &storage.Conversation{
		UserID:    userID,
		Title:     title,
		Summary:   overview.Summary,
		Words:     words,
		Intensity: &intensity,
	}

	if err := s.store.SaveConversation(ctx, conv); err != nil {
		return nil, fmt.Errorf("failed to save conversation record: %w", err)
	}
	if err := s.store.IncrementThemes(ctx, userID, words); err != nil {
		// Theme counts are advisory; the conversation record already landed.
		s.logger.Warn("failed to update theme counts", zap.Error(err))
	}
	return conv, nil
}

// MoodTrend aggregates the user's recent sessions into the 7-day trend.
func (s *Service) MoodTrend(ctx context.Context, userID string, now time.Time) ([]insight.MoodSample, error) {
	records, err := s.store.RecentConversations(ctx, userID, recentSessionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent conversations: %w", err)
	}

	samples := make([]mood.SessionSample, 0, len(records))
	for _, rec := range records {
		samples = append(samples, mood.SessionSample{
			Timestamp: rec.CreatedAt,
			Intensity: rec.Intensity,
		})
	}
	return mood.Aggregate(samples, now), nil
}

// RecurringThemes returns the user's most frequent themes.
func (s *Service) RecurringThemes(ctx context.Context, userID string) ([]storage.ThemeCount, error) {
	themes, err := s.store.TopThemes(ctx, userID, topThemeLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load themes: %w", err)
	}
	return themes, nil
}

func joinUserTurns(turns []chat.Turn) string {
	parts := make([]string, 0, len(turns))
	for _, turn := range turns {
		if turn.Role == chat.RoleUser {
			parts = append(parts, turn.Content)
		}
	}
	return strings.Join(parts, " ")
}
