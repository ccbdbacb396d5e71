package config

import (
	"os"
	"testing"
)

// clearEnv unsets all ILEARN_ environment variables for a clean test.
func clearEnv(t *testing.T) {
	t.Helper()
	envVars := []string{
		"ILEARN_AI_GOOGLE_API_KEY",
		"ILEARN_AI_CHAT_MODEL",
		"ILEARN_AI_IMAGE_MODEL",
		"ILEARN_CURRICULUM_PATH",
		"ILEARN_IMAGE_DIR",
		"ILEARN_LOG_LEVEL",
		"ILEARN_LOG_FORMAT",
		"ILEARN_LOG_FILE",
	}
	for _, v := range envVars {
		_ = os.Unsetenv(v)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AI.GoogleAPIKey != "" {
		t.Errorf("GoogleAPIKey = %q, want empty", cfg.AI.GoogleAPIKey)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want json", cfg.Log.Format)
	}
	if cfg.CurriculumPath != "" {
		t.Errorf("CurriculumPath = %q, want empty (embedded content)", cfg.CurriculumPath)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ILEARN_AI_GOOGLE_API_KEY", "secret")
	t.Setenv("ILEARN_AI_CHAT_MODEL", "gemini-3-flash-preview")
	t.Setenv("ILEARN_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AI.GoogleAPIKey != "secret" {
		t.Errorf("GoogleAPIKey = %q, want secret", cfg.AI.GoogleAPIKey)
	}
	if cfg.AI.ChatModel != "gemini-3-flash-preview" {
		t.Errorf("ChatModel = %q", cfg.AI.ChatModel)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}
