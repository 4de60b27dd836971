package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/wardrobeai/wardrobe-go/internal/config"
	"github.com/wardrobeai/wardrobe-go/internal/gemini"
	"github.com/wardrobeai/wardrobe-go/internal/handler"
	"github.com/wardrobeai/wardrobe-go/internal/metrics"
	"github.com/wardrobeai/wardrobe-go/internal/middleware"
	"github.com/wardrobeai/wardrobe-go/internal/repository"
	"github.com/wardrobeai/wardrobe-go/internal/service"
	"github.com/wardrobeai/wardrobe-go/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	persistent := openPersistentStore(cfg)

	credentials := repository.NewCredentialStore(persistent)
	items := repository.NewItemRepository(persistent)
	sessions := repository.NewSessionStore(storage.NewMemory())

	authService := service.NewAuthService(credentials, sessions)
	authHandler := handler.NewAuthHandler(authService)

	wardrobeService := service.NewWardrobeService(items)
	wardrobeHandler := handler.NewWardrobeHandler(wardrobeService)

	collector := metrics.NewCollector()

	r := chi.NewRouter()
	r.Use(middleware.Logger(collector))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", collector.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/v1/auth/signup", authHandler.HandleSignup)
		r.Post("/api/v1/auth/login", authHandler.HandleLogin)
	})

	// Logout stays outside the session gate so it is idempotent even for
	// dead tokens.
	r.Post("/api/v1/auth/logout", authHandler.HandleLogout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionAuth(authService))
		r.Get("/api/v1/auth/me", authHandler.HandleMe)

		r.Get("/api/v1/wardrobe", wardrobeHandler.HandleList)
		r.Post("/api/v1/wardrobe", wardrobeHandler.HandleAdd)
		r.Delete("/api/v1/wardrobe/{item_id}", wardrobeHandler.HandleRemove)

		// Stylist routes need a Gemini key; without one the wardrobe still
		// works, only the AI surface is disabled.
		if cfg.GeminiAPIKey == "" {
			slog.Warn("GEMINI_API_KEY not set, stylist routes disabled")
		} else {
			client := gemini.NewClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, collector)
			stylistService := service.NewStylistService(client, wardrobeService)
			stylistHandler := handler.NewStylistHandler(stylistService)

			r.Post("/api/v1/stylist/classify", stylistHandler.HandleClassify)
			r.Post("/api/v1/stylist/outfit", stylistHandler.HandleOutfit)
			r.Get("/api/v1/stylist/weather", stylistHandler.HandleWeather)
		}
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// openPersistentStore prefers MySQL when a DSN is configured and falls back
// to the file store so the service always comes up.
func openPersistentStore(cfg config.Config) storage.Store {
	if cfg.DatabaseDSN != "" {
		st, err := storage.NewMySQL(cfg.DatabaseDSN)
		if err == nil {
			slog.Info("using mysql slot store")
			return st
		}
		slog.Warn("database connection failed, falling back to file store", "error", err)
	}

	st, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		slog.Error("opening file store", "dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}
	slog.Info("using file slot store", "dir", cfg.DataDir)
	return st
}
