// Package config loads application configuration from environment variables.
// All variables use the ILEARN_ prefix.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	AI             AIConfig
	Log            LogConfig
	CurriculumPath string // optional override directory; empty = embedded content
	ImageDir       string // where generated illustrations are written; empty = user cache dir
}

// AIConfig holds settings for the Google Gemini service.
type AIConfig struct {
	GoogleAPIKey string
	ChatModel    string
	ImageModel   string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// Load reads configuration from the environment, sourcing a .env file first
// if one is present. A missing API key is not an error here: AI calls fail
// at call time instead, and the rest of the app works without them.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AI: AIConfig{
			GoogleAPIKey: envStr("ILEARN_AI_GOOGLE_API_KEY", ""),
			ChatModel:    envStr("ILEARN_AI_CHAT_MODEL", ""),
			ImageModel:   envStr("ILEARN_AI_IMAGE_MODEL", ""),
		},
		Log: LogConfig{
			Level:  envStr("ILEARN_LOG_LEVEL", "info"),
			Format: envStr("ILEARN_LOG_FORMAT", "json"),
			File:   envStr("ILEARN_LOG_FILE", ""),
		},
		CurriculumPath: envStr("ILEARN_CURRICULUM_PATH", ""),
		ImageDir:       envStr("ILEARN_IMAGE_DIR", ""),
	}

	return cfg, nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
