package speech

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Davooood90/rambl/backend/internal/model/voice"
	speechsvc "github.com/Davooood90/rambl/backend/internal/service/speech"
	"github.com/Davooood90/rambl/backend/pkg/utils"
)

// Handler serves the speech bridge: synthesis requests and the
// transcription websocket.
type Handler struct {
	synth         speechsvc.Synthesizer
	voices        *voice.Registry
	transcription bool
	logger        *zap.Logger
}

// New creates the speech handler. synth may be nil when synthesis is not
// configured; transcription reports the capability decided at startup.
func New(synth speechsvc.Synthesizer, voices *voice.Registry, transcription bool, logger *zap.Logger) *Handler {
	return &Handler{
		synth:         synth,
		voices:        voices,
		transcription: transcription,
		logger:        logger,
	}
}

// RegisterRoutes mounts the speech routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/speech", func(speechRouter chi.Router) {
		speechRouter.Get("/capabilities", h.handleCapabilities)
		speechRouter.Post("/synthesize", h.handleSynthesize)

		ws := NewWebSocketHandler(h.transcription, h.logger)
		ws.RegisterRoutes(speechRouter)
	})
}

// handleCapabilities reports what the speech bridge can do, so clients pick
// their input mode once instead of probing per call.
func (h *Handler) handleCapabilities(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]bool{
		"synthesis":     h.synth != nil,
		"transcription": h.transcription,
	})
}

type synthesizeRequest struct {
	Text     string `json:"text"`
	VoiceID  string `json:"voiceId,omitempty"`
	PresetID string `json:"presetId,omitempty"`
}

func (h *Handler) handleSynthesize(w http.ResponseWriter, r *http.Request) {
	if h.synth == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "speech synthesis unavailable")
		return
	}

	var req synthesizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		utils.RespondError(w, http.StatusBadRequest, "text is required")
		return
	}

	voiceID := req.VoiceID
	if voiceID == "" {
		voiceID = h.voices.ResolveID(req.PresetID)
	}

	audio, err := h.synth.Synthesize(r.Context(), req.Text, voiceID)
	if err != nil {
		h.logger.Warn("synthesis request failed", zap.String("voice", voiceID), zap.Error(err))
		utils.RespondError(w, http.StatusBadGateway, "speech synthesis failed")
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Length", strconv.Itoa(len(audio)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(audio); err != nil {
		h.logger.Warn("failed to write audio response", zap.Error(err))
	}
}
