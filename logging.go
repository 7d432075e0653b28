package main

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/markovic-nikola/keyhint/config"
)

// closeLog releases the log file opened by setupLogging.
var closeLog = func() {}

// setupLogging points slog at the configured log file. The TUI owns the
// terminal, so without a file logs are dropped.
func setupLogging(cfg config.Config) error {
	if cfg.LogFile == "" {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}

	f, err := tea.LogToFile(cfg.LogFile, "keyhint")
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	closeLog = func() { _ = f.Close() }

	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	slog.Debug("logging started", "level", level.String())
	return nil
}
