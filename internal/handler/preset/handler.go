package preset

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Davooood90/rambl/backend/internal/model/preset"
	"github.com/Davooood90/rambl/backend/internal/model/voice"
	"github.com/Davooood90/rambl/backend/pkg/utils"
)

// Handler serves the static personality and voice catalogs.
type Handler struct {
	presets preset.Store
	voices  *voice.Registry
}

// New creates the catalog handler.
func New(presets preset.Store, voices *voice.Registry) *Handler {
	return &Handler{presets: presets, voices: voices}
}

// RegisterRoutes mounts the catalog routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/presets", h.handleListPresets)
	r.Get("/voices", h.handleListVoices)
}

func (h *Handler) handleListPresets(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.presets.List())
}

func (h *Handler) handleListVoices(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.voices.List())
}
