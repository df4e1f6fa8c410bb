// Package config provides configuration for the ticket bot.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the ticket bot configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Catalog settings. When CatalogDB is empty the built-in seed catalog
	// is used; otherwise events are loaded from the sqlite database.
	CatalogDB string

	// Completion service for phrasing augmentation. An empty API key means
	// deterministic mode only; that is not an error.
	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string
	LLMTimeout time.Duration

	// Remote image optimization. An empty API key skips optimization.
	OptimizerURL    string
	OptimizerAPIKey string

	// MoodMatchMode selects keyword matching semantics: "substring"
	// (default) or "word".
	MoodMatchMode string
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		HTTPPort:        getEnvInt("HTTP_PORT", 8080),
		CatalogDB:       getEnv("CATALOG_DB", ""),
		LLMBaseURL:      getEnv("LLM_BASE_URL", "https://api.openai.com"),
		LLMAPIKey:       getEnv("LLM_API_KEY", ""),
		LLMModel:        getEnv("LLM_MODEL", "gpt-4o-mini"),
		LLMTimeout:      time.Duration(getEnvInt("LLM_TIMEOUT_MS", 5000)) * time.Millisecond,
		OptimizerURL:    getEnv("OPTIMIZER_URL", "https://api.tinify.com/shrink"),
		OptimizerAPIKey: getEnv("OPTIMIZER_API_KEY", ""),
		MoodMatchMode:   getEnv("MOOD_MATCH_MODE", "substring"),
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
