// Package logging builds the structured logger. The terminal belongs to the UI in
// interactive games, so logs go to a file unless the game is headless.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// New returns a text logger at level writing to path, or to stderr when path is empty.
// The returned close function releases the file.
func New(path string, level slog.Level) (*slog.Logger, func() error, error) {
	if path == "" {
		return NewWriter(os.Stderr, level), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return NewWriter(f, level), f.Close, nil
}

// NewWriter returns a text logger at level writing to w.
func NewWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
