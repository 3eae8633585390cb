package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	chathandler "github.com/Davooood90/rambl/backend/internal/handler/chat"
	insighthandler "github.com/Davooood90/rambl/backend/internal/handler/insight"
	preferenceshandler "github.com/Davooood90/rambl/backend/internal/handler/preferences"
	presethandler "github.com/Davooood90/rambl/backend/internal/handler/preset"
	speechhandler "github.com/Davooood90/rambl/backend/internal/handler/speech"
	"github.com/Davooood90/rambl/backend/internal/middleware"
	"github.com/Davooood90/rambl/backend/internal/model/preset"
	"github.com/Davooood90/rambl/backend/internal/model/voice"
	"github.com/Davooood90/rambl/backend/internal/service/ai"
	chatservice "github.com/Davooood90/rambl/backend/internal/service/chat"
	insightservice "github.com/Davooood90/rambl/backend/internal/service/insight"
	speechservice "github.com/Davooood90/rambl/backend/internal/service/speech"
	thememanager "github.com/Davooood90/rambl/backend/internal/service/theme"
	"github.com/Davooood90/rambl/backend/internal/storage"
	"github.com/Davooood90/rambl/backend/pkg/utils"
)

// Deps bundles everything the HTTP surface needs.
type Deps struct {
	Presets       preset.Store
	Voices        *voice.Registry
	ChatSvc       *chatservice.Service
	Gateway       *ai.Gateway
	InsightSvc    *insightservice.Service
	Synth         speechservice.Synthesizer
	Transcription bool
	Themes        *thememanager.Manager
	Store         storage.Storage
	Logger        *zap.Logger
}

// NewRouter wires HTTP routes to core services.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS)

	chatHandler := chathandler.New(deps.ChatSvc, deps.Gateway, deps.Presets, deps.Voices, deps.Synth, deps.Logger)
	presetHandler := presethandler.New(deps.Presets, deps.Voices)
	speechHandler := speechhandler.New(deps.Synth, deps.Voices, deps.Transcription, deps.Logger)
	insightHandler := insighthandler.New(deps.InsightSvc, deps.ChatSvc, deps.Themes, deps.Logger)
	preferencesHandler := preferenceshandler.New(deps.Themes, deps.Store, deps.Logger)

	r.Route("/api", func(api chi.Router) {
		presetHandler.RegisterRoutes(api)
		chatHandler.RegisterRoutes(api)
		speechHandler.RegisterRoutes(api)
		insightHandler.RegisterRoutes(api)
		preferencesHandler.RegisterRoutes(api)

		api.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
		})
	})

	return r
}
