// Package cli provides the Cobra command tree and dependency wiring for the
// p2h CLI. This file defines the Dependencies struct (Composition Root) that
// wires settings, logging and terminal UI together.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pixel2html/p2h/internal/collector"
	"github.com/pixel2html/p2h/internal/config"
	"github.com/pixel2html/p2h/internal/ui"
)

// Dependencies holds the services shared by CLI commands.
// This is the only place where they are instantiated.
type Dependencies struct {
	Settings *config.Settings
	Logger   *slog.Logger
	LogLevel *slog.LevelVar
	Theme    *ui.Theme
	Headless *ui.HeadlessManager

	// Prompter, when set, replaces the form or headless prompter of init.
	Prompter collector.Prompter
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies loads the global settings and builds the logger and UI
// services. It should be called once during application startup.
func InitDependencies() error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	deps = NewDependencies(settings, os.Stderr)
	if settings.File != "" {
		deps.Logger.Debug("settings loaded", "file", settings.File)
	}
	return nil
}

// NewDependencies wires the services for settings, logging to logOut.
// A nil logOut discards log output.
func NewDependencies(settings *config.Settings, logOut io.Writer) *Dependencies {
	if logOut == nil {
		logOut = io.Discard
	}
	level := new(slog.LevelVar)
	level.Set(settings.Level())

	noColor := settings.NoColor || os.Getenv("NO_COLOR") != ""

	return &Dependencies{
		Settings: settings,
		Logger:   slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level})),
		LogLevel: level,
		Theme:    ui.NewTheme(noColor),
		Headless: ui.NewHeadlessManager(),
	}
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// Progress returns a progress factory writing to w.
func (d *Dependencies) Progress(w io.Writer) *ui.Progress {
	return ui.NewProgress(d.Theme, d.Headless, w)
}
