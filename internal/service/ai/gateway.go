package ai

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/Davooood90/rambl/backend/internal/model/chat"
	"github.com/Davooood90/rambl/backend/internal/model/preset"
)

// ErrEmptyMessage rejects user content that is blank after trimming.
var ErrEmptyMessage = errors.New("user message is empty")

// Fallback assistant messages substituted when the completion service
// fails. The soft variant is used by the guided journaling flow.
const (
	FallbackMessage     = "Sorry, I encountered an error. Please try again."
	SoftFallbackMessage = "I'm here for you. Sometimes I have trouble connecting, but please continue sharing."
)

// historyLimit caps how many prior turns travel with each request.
const historyLimit = 10

// Gateway threads a conversation through the stateless completion service.
// Service failures never propagate: the reply degrades to a fixed fallback
// turn and the error is logged for diagnostics only. The caller appends
// both the user turn and the returned assistant turn, so every exchange
// grows the thread by exactly two.
type Gateway struct {
	completer Completer
	presets   preset.Store
	logger    *zap.Logger
}

// NewGateway wires the gateway to a completer and the preset catalog.
func NewGateway(completer Completer, presets preset.Store, logger *zap.Logger) *Gateway {
	return &Gateway{completer: completer, presets: presets, logger: logger}
}

// SendTurn resolves presetID (default fallback on miss), issues exactly one
// completion over the trimmed history, and returns the assistant turn.
func (g *Gateway) SendTurn(ctx context.Context, history []chat.Turn, userContent, presetID string) (chat.Turn, error) {
	return g.SendTurnWithFallback(ctx, history, userContent, presetID, FallbackMessage)
}

// SendTurnWithFallback is SendTurn with a caller-chosen recovery message.
func (g *Gateway) SendTurnWithFallback(ctx context.Context, history []chat.Turn, userContent, presetID, fallback string) (chat.Turn, error) {
	userContent = strings.TrimSpace(userContent)
	if userContent == "" {
		return chat.Turn{}, ErrEmptyMessage
	}

	resolved := g.presets.Resolve(presetID)

	text, err := g.completer.Complete(ctx, resolved.SystemPrompt, trimHistory(history), userContent)
	if err != nil {
		g.logger.Warn("completion failed, substituting fallback reply",
			zap.String("preset", resolved.ID),
			zap.Error(err))
		return chat.NewTurn(chat.RoleAssistant, fallback), nil
	}

	return chat.NewTurn(chat.RoleAssistant, text), nil
}

func trimHistory(history []chat.Turn) []chat.Turn {
	if len(history) <= historyLimit {
		return history
	}
	return history[len(history)-historyLimit:]
}
