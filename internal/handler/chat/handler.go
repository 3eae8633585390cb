package chat

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	chatmodel "github.com/Davooood90/rambl/backend/internal/model/chat"
	"github.com/Davooood90/rambl/backend/internal/model/preset"
	"github.com/Davooood90/rambl/backend/internal/model/voice"
	"github.com/Davooood90/rambl/backend/internal/service/ai"
	chatservice "github.com/Davooood90/rambl/backend/internal/service/chat"
	"github.com/Davooood90/rambl/backend/internal/service/speech"
	"github.com/Davooood90/rambl/backend/pkg/utils"
)

// Handler serves the conversational session surface.
type Handler struct {
	chatSvc *chatservice.Service
	gateway *ai.Gateway
	presets preset.Store
	voices  *voice.Registry
	synth   speech.Synthesizer
	logger  *zap.Logger
}

// New creates the chat handler. synth may be nil when the synthesis service
// is not configured; voice replies then degrade to text-only.
func New(chatSvc *chatservice.Service, gateway *ai.Gateway, presets preset.Store, voices *voice.Registry, synth speech.Synthesizer, logger *zap.Logger) *Handler {
	return &Handler{
		chatSvc: chatSvc,
		gateway: gateway,
		presets: presets,
		voices:  voices,
		synth:   synth,
		logger:  logger,
	}
}

// RegisterRoutes mounts the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/session", h.handleCreateSession)
	r.Post("/chat", h.handleExchange)
	r.Get("/session/{sessionID}/transcript", h.handleTranscript)
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		PresetID string `json:"presetId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Unknown or missing preset ids resolve to the default personality.
	resolved := h.presets.Resolve(payload.PresetID)

	session, err := h.chatSvc.CreateSession(r.Context(), resolved.ID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, session)
}

type exchangeRequest struct {
	SessionID   string        `json:"sessionId,omitempty"`
	PresetID    string        `json:"presetId,omitempty"`
	UserMessage string        `json:"userMessage"`
	History     []historyTurn `json:"history,omitempty"`
	Speak       bool          `json:"speak,omitempty"`
}

type historyTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type exchangeResponse struct {
	Text    string `json:"text"`
	VoiceID string `json:"voiceId,omitempty"`
	Audio   string `json:"audio,omitempty"`
}

// handleExchange runs one exchange: the new user turn plus exactly one
// assistant turn, both appended to the session thread when one is named.
func (h *Handler) handleExchange(w http.ResponseWriter, r *http.Request) {
	var payload exchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	presetID := payload.PresetID
	history := mapHistory(payload.History)

	if payload.SessionID != "" {
		session, err := h.chatSvc.GetSession(r.Context(), payload.SessionID)
		if err != nil {
			utils.RespondError(w, http.StatusNotFound, "session not found")
			return
		}
		if presetID == "" {
			presetID = session.PresetID
		}
		history, err = h.chatSvc.Transcript(r.Context(), payload.SessionID)
		if err != nil {
			utils.RespondError(w, http.StatusNotFound, "session not found")
			return
		}
	}

	assistantTurn, err := h.gateway.SendTurn(r.Context(), history, payload.UserMessage, presetID)
	if err != nil {
		if errors.Is(err, ai.ErrEmptyMessage) {
			utils.RespondError(w, http.StatusBadRequest, "userMessage is required")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if payload.SessionID != "" {
		userTurn := chatmodel.NewTurn(chatmodel.RoleUser, payload.UserMessage)
		if err := h.chatSvc.AppendTurn(r.Context(), payload.SessionID, userTurn); err != nil {
			h.logger.Warn("failed to append user turn", zap.Error(err))
		}
		if err := h.chatSvc.AppendTurn(r.Context(), payload.SessionID, assistantTurn); err != nil {
			h.logger.Warn("failed to append assistant turn", zap.Error(err))
		}
	}

	response := exchangeResponse{Text: assistantTurn.Content}

	if payload.Speak {
		response.VoiceID = h.voices.ResolveID(presetID)
		if h.synth != nil {
			audio, synthErr := h.synth.Synthesize(r.Context(), assistantTurn.Content, response.VoiceID)
			if synthErr != nil {
				// Degrade to text-only; the thread is already intact.
				h.logger.Warn("synthesis failed, returning text only",
					zap.String("voice", response.VoiceID),
					zap.Error(synthErr))
			} else {
				response.Audio = base64.StdEncoding.EncodeToString(audio)
			}
		}
	}

	utils.RespondJSON(w, http.StatusOK, response)
}

func (h *Handler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	turns, err := h.chatSvc.Transcript(r.Context(), sessionID)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, turns)
}

func mapHistory(turns []historyTurn) []chatmodel.Turn {
	if len(turns) == 0 {
		return nil
	}

	history := make([]chatmodel.Turn, 0, len(turns))
	for _, t := range turns {
		if t.Role != chatmodel.RoleUser && t.Role != chatmodel.RoleAssistant {
			continue
		}
		history = append(history, chatmodel.Turn{Role: t.Role, Content: t.Content})
	}
	return history
}
