package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Davooood90/rambl/backend/internal/config"
	"github.com/Davooood90/rambl/backend/internal/handler"
	"github.com/Davooood90/rambl/backend/internal/model/preset"
	"github.com/Davooood90/rambl/backend/internal/model/voice"
	"github.com/Davooood90/rambl/backend/internal/service/ai"
	chatservice "github.com/Davooood90/rambl/backend/internal/service/chat"
	insightservice "github.com/Davooood90/rambl/backend/internal/service/insight"
	speechservice "github.com/Davooood90/rambl/backend/internal/service/speech"
	thememanager "github.com/Davooood90/rambl/backend/internal/service/theme"
	"github.com/Davooood90/rambl/backend/internal/storage"
)

const defaultUserID = "local"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, _ := zap.NewProduction()
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file, using system environment only")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	store := newStorage(cfg.Database, logger)
	defer store.Close()

	presetStore := preset.NewMemoryStore(preset.Seed())
	voiceRegistry := voice.NewRegistry(voice.Seed())
	chatSvc := chatservice.NewService()

	completer := newCompleter(ctx, cfg.AI, logger)
	gateway := ai.NewGateway(completer, presetStore, logger)
	insightSvc := insightservice.NewService(gateway, store, logger)

	var synth speechservice.Synthesizer
	if cfg.Speech.Enabled {
		synth = speechservice.NewElevenLabsClient(cfg.Speech, logger)
		logger.Info("speech synthesis enabled")
	} else {
		logger.Info("ELEVENLABS_API_KEY not set, voice replies degrade to text-only")
	}

	themeManager := thememanager.NewManager(cfg.Theme.CachePath, store, logger)
	themeManager.Load(ctx, defaultUserID)

	router := handler.NewRouter(handler.Deps{
		Presets:       presetStore,
		Voices:        voiceRegistry,
		ChatSvc:       chatSvc,
		Gateway:       gateway,
		InsightSvc:    insightSvc,
		Synth:         synth,
		Transcription: cfg.Speech.Transcription,
		Themes:        themeManager,
		Store:         store,
		Logger:        logger,
	})

	startServer(ctx, cfg.Server, router, logger)
}

// newStorage picks the record store backend from configuration.
func newStorage(cfg config.DatabaseConfig, logger *zap.Logger) storage.Storage {
	if cfg.UseInMemory {
		logger.Info("using in-memory record store")
		return storage.NewMemoryStorage()
	}

	store, err := storage.NewPostgresStorage(storage.DatabaseConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		User:     cfg.User,
		Password: cfg.Password,
		DBName:   cfg.DBName,
		SSLMode:  cfg.SSLMode,
	}, logger)
	if err != nil {
		logger.Fatal("failed to initialize record store", zap.Error(err))
	}
	logger.Info("using PostgreSQL record store")
	return store
}

// newCompleter builds the configured completion provider, degrading to the
// unavailable completer (fixed fallback replies) when credentials are
// missing or initialization fails.
func newCompleter(ctx context.Context, cfg config.AIConfig, logger *zap.Logger) ai.Completer {
	if !cfg.Enabled() {
		logger.Warn("completion provider credentials missing, replies degrade to fallback messages")
		return ai.UnavailableCompleter{}
	}

	switch cfg.Provider {
	case config.ProviderArk:
		chatModel, err := cfg.NewArkChatModel(ctx)
		if err != nil {
			logger.Warn("failed to build ark chat model", zap.Error(err))
			return ai.UnavailableCompleter{}
		}
		completer, err := ai.NewArkCompleter(ctx, chatModel)
		if err != nil {
			logger.Warn("failed to initialize ark completer", zap.Error(err))
			return ai.UnavailableCompleter{}
		}
		logger.Info("completion provider initialized", zap.String("provider", config.ProviderArk))
		return completer

	default:
		completer, err := ai.NewGeminiCompleter(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Warn("failed to initialize gemini completer", zap.Error(err))
			return ai.UnavailableCompleter{}
		}
		logger.Info("completion provider initialized",
			zap.String("provider", config.ProviderGemini),
			zap.String("model", cfg.GeminiModel))
		return completer
	}
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Info("rambl backend listening", zap.String("addr", serverCfg.Addr))
	if err := runServer(ctx, srv); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
