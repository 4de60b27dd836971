package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/wardrobeai/wardrobe-go/internal/blog"
	"github.com/wardrobeai/wardrobe-go/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	server := blog.NewServer(cfg.BlogJWTSecret, cfg.BlogJWTExpiry)

	srv := &http.Server{
		Addr:    ":" + cfg.BlogPort,
		Handler: server.Routes(),
	}

	go func() {
		slog.Info("blog demo starting", "port", cfg.BlogPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down blog demo")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}
}
