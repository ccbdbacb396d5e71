package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ilearncom/ilearncom/internal/ai"
	"github.com/ilearncom/ilearncom/internal/curriculum"
	"github.com/ilearncom/ilearncom/internal/platform/config"
	"github.com/ilearncom/ilearncom/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	// The terminal belongs to the TUI, so logs go to a file.
	logClose := setupLogging(cfg.Log)
	defer logClose()

	store, err := loadCurriculum(cfg.CurriculumPath)
	if err != nil {
		slog.Error("failed to load curriculum", "error", err)
		fmt.Fprintln(os.Stderr, "failed to load curriculum:", err)
		os.Exit(1)
	}

	provider := ai.NewGoogleProvider(cfg.AI.GoogleAPIKey)
	if cfg.AI.GoogleAPIKey == "" {
		slog.Warn("no Google API key configured; AI features will fail at call time")
	}

	model := ui.NewModel(store, provider, ui.Options{
		ChatModel:  cfg.AI.ChatModel,
		ImageModel: cfg.AI.ImageModel,
		ImageDir:   cfg.ImageDir,
	})

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		slog.Error("program error", "error", err)
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadCurriculum uses the override directory when configured, otherwise the
// content shipped with the binary.
func loadCurriculum(path string) (*curriculum.Store, error) {
	if path != "" {
		return curriculum.Load(os.DirFS(path))
	}
	return curriculum.Default()
}

func setupLogging(cfg config.LogConfig) func() {
	path := cfg.File
	if path == "" {
		path = filepath.Join(os.TempDir(), "ilearncom.log")
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		w = f
		closeFn = func() { f.Close() }
	}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(cfg.Level)})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(cfg.Level)})
	}
	slog.SetDefault(slog.New(handler))
	return closeFn
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
