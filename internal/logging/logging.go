package logging

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// ErrorWriter wraps a Logger and implements the Writer interface.
type ErrorWriter struct {
	logger *slog.Logger
}

// Write logs p, with surrounding whitespace trimmed, at ERROR level.
func (ew *ErrorWriter) Write(p []byte) (int, error) {
	ew.logger.Error(string(bytes.TrimSpace(p)))
	return len(p), nil
}

// NewErrorWriter creates an ErrorWriter for the given logger.
func NewErrorWriter(logger *slog.Logger) *ErrorWriter {
	return &ErrorWriter{logger}
}

// New creates a text Logger writing to w. If debug is true the level is
// DEBUG and source locations are included, else the level is INFO.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	addSource := false
	if debug {
		level = slog.LevelDebug
		addSource = true
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
	}))
}

// NewLogger creates a Logger appending to logfile, creating the file and its
// parent directory as needed. The returned file should be closed when the
// logger is no longer used.
func NewLogger(logfile string, debug bool) (*slog.Logger, *os.File, error) {
	if err := os.MkdirAll(filepath.Dir(logfile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(
		logfile,
		os.O_CREATE|os.O_APPEND|os.O_WRONLY,
		0o644,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", logfile, err)
	}

	return New(f, debug), f, nil
}
