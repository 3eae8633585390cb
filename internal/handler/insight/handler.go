package insight

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	chatmodel "github.com/Davooood90/rambl/backend/internal/model/chat"
	chatservice "github.com/Davooood90/rambl/backend/internal/service/chat"
	insightservice "github.com/Davooood90/rambl/backend/internal/service/insight"
	thememanager "github.com/Davooood90/rambl/backend/internal/service/theme"
	"github.com/Davooood90/rambl/backend/pkg/utils"
)

// defaultUserID stands in while authentication lives outside this service.
const defaultUserID = "local"

// Handler serves session analytics and the dashboard aggregates.
type Handler struct {
	insightSvc *insightservice.Service
	chatSvc    *chatservice.Service
	themes     *thememanager.Manager
	logger     *zap.Logger
}

// New creates the insight handler.
func New(insightSvc *insightservice.Service, chatSvc *chatservice.Service, themes *thememanager.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		insightSvc: insightSvc,
		chatSvc:    chatSvc,
		themes:     themes,
		logger:     logger,
	}
}

// RegisterRoutes mounts the analytics routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/session/{sessionID}/overview", h.handleSessionOverview)
	r.Post("/overview", h.handleOverview)
	r.Get("/dashboard/mood", h.handleMoodTrend)
	r.Get("/dashboard/themes", h.handleThemes)
}

// handleSessionOverview closes a session: analyzes its thread, persists the
// conversation record, and returns the overview.
func (h *Handler) handleSessionOverview(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var payload struct {
		UserID string `json:"userId,omitempty"`
		Title  string `json:"title,omitempty"`
	}
	if r.Body != nil {
		// Body is optional; decode errors on an empty body are fine.
		_ = json.NewDecoder(r.Body).Decode(&payload)
	}
	if payload.UserID == "" {
		payload.UserID = defaultUserID
	}

	turns, err := h.chatSvc.EndSession(r.Context(), sessionID)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}

	overview := h.insightSvc.Analyze(r.Context(), turns, h.themes.Colors().Accent)

	conv, err := h.insightSvc.Record(r.Context(), payload.UserID, payload.Title, overview)
	if err != nil {
		h.logger.Warn("failed to persist session record", zap.Error(err))
		// The overview is still useful without the durable record.
		utils.RespondJSON(w, http.StatusOK, map[string]any{"overview": overview})
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"overview":     overview,
		"conversation": conv,
	})
}

// handleOverview analyzes a client-held thread without persisting anything.
func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	turns := make([]chatmodel.Turn, 0, len(payload.Messages))
	for _, m := range payload.Messages {
		turns = append(turns, chatmodel.Turn{Role: m.Role, Content: m.Content})
	}

	overview := h.insightSvc.Analyze(r.Context(), turns, h.themes.Colors().Accent)
	utils.RespondJSON(w, http.StatusOK, overview)
}

func (h *Handler) handleMoodTrend(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		userID = defaultUserID
	}

	samples, err := h.insightSvc.MoodTrend(r.Context(), userID, time.Now())
	if err != nil {
		h.logger.Warn("failed to build mood trend", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, "failed to load mood trend")
		return
	}

	utils.RespondJSON(w, http.StatusOK, samples)
}

func (h *Handler) handleThemes(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		userID = defaultUserID
	}

	themes, err := h.insightSvc.RecurringThemes(r.Context(), userID)
	if err != nil {
		h.logger.Warn("failed to load recurring themes", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, "failed to load themes")
		return
	}

	utils.RespondJSON(w, http.StatusOK, themes)
}
