package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Corpus sources accepted by CORPUS_SOURCE.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceSQLite   = "sqlite"
)

// Config holds all configuration for the application.
type Config struct {
	APIPort   string
	LogLevel  slog.Level
	LogFormat string

	CorpusSource string
	CorpusPath   string
	CorpusWatch  bool
	DBPath       string

	LLMBaseURL   string
	LLMModelName string
	LLMAPIKey    string
	LLMTimeout   time.Duration

	FallbackEnabled bool
	FallbackMessage string
}

// LLMConfigured reports whether a generative service endpoint is set.
func (c *Config) LLMConfigured() bool {
	return c.LLMBaseURL != ""
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates required fields.
// If a .env file exists in the current directory or project root, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		APIPort:         getEnv("API_PORT", "9000"),
		LogFormat:       strings.ToLower(getEnv("LOG_FORMAT", "text")),
		CorpusSource:    strings.ToLower(getEnv("CORPUS_SOURCE", SourceEmbedded)),
		CorpusPath:      getEnv("CORPUS_PATH", ""),
		DBPath:          getEnv("DB_PATH", "./data/nutrition-assistant.db"),
		LLMBaseURL:      getEnv("LLM_BASE_URL", ""),
		LLMModelName:    getEnv("LLM_MODEL", "Llama-3.1-8B-Instruct"),
		LLMAPIKey:       getEnv("LLM_API_KEY", "dummy-key"),
		FallbackMessage: getEnv("FALLBACK_MESSAGE", ""),
	}

	var err error
	if cfg.LogLevel, err = parseLevel(getEnv("LOG_LEVEL", "info")); err != nil {
		return nil, err
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}
	if cfg.CorpusWatch, err = getBool("CORPUS_WATCH", false); err != nil {
		return nil, err
	}
	if cfg.FallbackEnabled, err = getBool("FALLBACK_ENABLED", true); err != nil {
		return nil, err
	}

	timeout, err := time.ParseDuration(getEnv("LLM_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("LLM_TIMEOUT must be a valid duration: %w", err)
	}
	if timeout < 0 {
		return nil, fmt.Errorf("LLM_TIMEOUT must not be negative")
	}
	cfg.LLMTimeout = timeout

	switch cfg.CorpusSource {
	case SourceEmbedded:
	case SourceFile:
		if cfg.CorpusPath == "" {
			return nil, fmt.Errorf("CORPUS_PATH is required when CORPUS_SOURCE=file")
		}
	case SourceSQLite:
		// Create the data directory for the database file
		dataDir := filepath.Dir(cfg.DBPath)
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	default:
		return nil, fmt.Errorf("CORPUS_SOURCE must be one of embedded, file, sqlite, got %q", cfg.CorpusSource)
	}

	if cfg.CorpusWatch && cfg.CorpusSource != SourceFile {
		return nil, fmt.Errorf("CORPUS_WATCH requires CORPUS_SOURCE=file")
	}

	return cfg, nil
}

// loadDotEnv loads .env from the current directory, then walks up to find
// the project root. Existing environment variables are never overridden.
func loadDotEnv() {
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err != nil {
		return
	}
	dir := wd
	for i := 0; i < 5; i++ { // Limit search depth
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return // Reached filesystem root
		}
		dir = parent
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}

func parseLevel(value string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error: %w", err)
	}
	return level, nil
}
