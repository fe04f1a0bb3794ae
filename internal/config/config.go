package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config captures runtime configuration sourced from environment variables.
type Config struct {
	Environment string
	HTTPPort    string
	DatabaseURL string
	FrontendDir string
	LogDir      string
}

// Load reads env vars and falls back to defaults so the server can boot with zero configuration.
// A .env file in the working directory is honored when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Environment: getEnv("IOC_ENV", "development"),
		HTTPPort:    getEnv("IOC_HTTP_PORT", "8080"),
		DatabaseURL: getEnv("IOC_DATABASE_URL", filepath.Join("data", "argus.db")),
		FrontendDir: getEnv("IOC_FRONTEND_DIR", "web"),
		LogDir:      getEnv("IOC_LOG_DIR", filepath.Join("data", "logs")),
	}

	// Postgres DSNs need no local directory; sqlite paths do.
	if !strings.HasPrefix(cfg.DatabaseURL, "postgres") && !strings.HasPrefix(cfg.DatabaseURL, "file:") {
		if err := os.MkdirAll(filepath.Dir(cfg.DatabaseURL), 0o755); err != nil {
			return Config{}, fmt.Errorf("ensure data directory: %w", err)
		}
	}

	return cfg, nil
}

// IsDevelopment reports whether the server runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return fallback
}
