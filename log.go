package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/turkosaurus/userview/internal/logging"
)

// newFileLogger logs to a file so output never lands on the TUI.
func newFileLogger(logFile string) (*slog.Logger, error) {
	if logFile == "" {
		return nil, fmt.Errorf("no log file configured")
	}
	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	level := "info"
	if os.Getenv("DEBUG") != "" {
		level = "debug"
	}

	logger := logging.New(logging.Config{
		Level:  level,
		Format: "text",
		Output: f,
	})
	logger.Debug("initialized text file logger",
		"path", logFile,
		"level", level,
	)
	return logger, nil
}
