package config

import (
	"log/slog"
	"os"
	"time"
)

const devBlogSecret = "dev-secret-change-in-production"

// Config carries the runtime settings of both binaries.
type Config struct {
	Port        string
	Env         string
	DataDir     string
	DatabaseDSN string

	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	BlogPort      string
	BlogJWTSecret string
	BlogJWTExpiry time.Duration
}

// Load reads configuration from the environment, applying defaults. When
// DATABASE_DSN is empty the wardrobe slots live in DATA_DIR files.
func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DataDir:     getEnv("DATA_DIR", "data"),
		DatabaseDSN: getEnv("DATABASE_DSN", ""),

		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", ""),

		BlogPort:      getEnv("BLOG_PORT", "4000"),
		BlogJWTSecret: getEnv("BLOG_JWT_SECRET", devBlogSecret),
		BlogJWTExpiry: time.Hour,
	}

	if cfg.Env == "production" && cfg.BlogJWTSecret == devBlogSecret {
		slog.Error("BLOG_JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
