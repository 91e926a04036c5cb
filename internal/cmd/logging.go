package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/runger/pickaboo/internal/config"
)

// newLogger returns the logger handed to the picker. Pickers only log at
// debug level, so the log file is opened only when log.level is debug; the
// terminal is never used since it is being drawn on.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	if cfg.Log.Level != "debug" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	path := cfg.LogFile()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	logger = logger.With("pid", os.Getpid())
	return logger, func() { f.Close() }, nil
}
