// Package logging wires log/slog for a full-screen terminal program, where
// nothing may be written to stdout or stderr while the UI is running.
package logging

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup installs the default slog logger. With an empty path every record is
// discarded; otherwise records are appended to path at debug level.
func Setup(path string) (io.Closer, error) {
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nopCloser{}, nil
	}

	f, err := tea.LogToFile(path, "termsocial")
	if err != nil {
		return nil, fmt.Errorf("opening log %s: %w", path, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return f, nil
}
