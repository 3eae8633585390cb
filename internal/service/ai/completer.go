package ai

import (
	"context"
	"errors"

	"github.com/Davooood90/rambl/backend/internal/model/chat"
)

// Completer is the capability boundary to the generative-text service: one
// system prompt, the prior turns, one new user message, exactly one reply.
// Implementations translate the internal roles into whatever the provider
// expects.
type Completer interface {
	Complete(ctx context.Context, systemPrompt string, history []chat.Turn, userMessage string) (string, error)
}

// ErrProviderUnavailable reports that no completion provider is configured.
var ErrProviderUnavailable = errors.New("completion provider not configured")

// UnavailableCompleter always fails, which keeps the gateway on its fixed
// fallback replies when no provider credentials are present.
type UnavailableCompleter struct{}

// Complete implements Completer.
func (UnavailableCompleter) Complete(context.Context, string, []chat.Turn, string) (string, error) {
	return "", ErrProviderUnavailable
}
