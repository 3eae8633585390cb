package preferences

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	thememanager "github.com/Davooood90/rambl/backend/internal/service/theme"
	"github.com/Davooood90/rambl/backend/internal/storage"
	"github.com/Davooood90/rambl/backend/pkg/utils"
)

const defaultUserID = "local"

// Handler serves the UI preference surface: theme and avatar.
type Handler struct {
	themes *thememanager.Manager
	store  storage.Storage
	logger *zap.Logger
}

// New creates the preferences handler.
func New(themes *thememanager.Manager, store storage.Storage, logger *zap.Logger) *Handler {
	return &Handler{themes: themes, store: store, logger: logger}
}

// RegisterRoutes mounts the preference routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/preferences", func(prefs chi.Router) {
		prefs.Get("/", h.handleGet)
		prefs.Put("/theme", h.handleSetTheme)
		prefs.Put("/avatar", h.handleSetAvatar)
	})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r)

	avatarURL := ""
	prefs, err := h.store.GetPreferences(r.Context(), userID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		h.logger.Warn("failed to load preferences", zap.Error(err))
	} else if err == nil {
		avatarURL = prefs.AvatarURL
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"theme":     h.themes.Active(),
		"colors":    h.themes.Colors(),
		"avatarUrl": avatarURL,
	})
}

func (h *Handler) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID string `json:"userId,omitempty"`
		Theme  string `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.UserID == "" {
		payload.UserID = defaultUserID
	}

	if err := h.themes.Set(payload.UserID, payload.Theme); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"theme":  h.themes.Active(),
		"colors": h.themes.Colors(),
	})
}

func (h *Handler) handleSetAvatar(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID    string `json:"userId,omitempty"`
		AvatarURL string `json:"avatarUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.UserID == "" {
		payload.UserID = defaultUserID
	}
	if strings.TrimSpace(payload.AvatarURL) == "" {
		utils.RespondError(w, http.StatusBadRequest, "avatarUrl is required")
		return
	}

	if err := h.store.SaveAvatar(r.Context(), payload.UserID, payload.AvatarURL); err != nil {
		h.logger.Warn("failed to save avatar", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, "failed to save avatar")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"avatarUrl": payload.AvatarURL})
}

func userIDFrom(r *http.Request) string {
	if id := r.URL.Query().Get("userId"); id != "" {
		return id
	}
	return defaultUserID
}
