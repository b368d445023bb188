// Package logging configures the zerolog logger used while the TUI owns the
// terminal.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/session"
)

// Open returns a JSON logger appending to path, and a function closing the
// file. An empty path yields a disabled logger.
func Open(path string) (zerolog.Logger, func() error, error) {
	if path == "" {
		return zerolog.Nop(), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return New(file), file.Close, nil
}

// New returns a JSON logger with timestamps writing to w.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

// SessionObserver logs session lifecycle events. Ticks are logged at debug
// level.
func SessionObserver(log zerolog.Logger) session.Observer {
	return func(ev session.Event, snap model.Snapshot) {
		var e *zerolog.Event
		switch ev {
		case session.EventTick, session.EventExtended:
			e = log.Debug()
		default:
			e = log.Info()
		}
		e = e.Str("event", ev.String()).
			Str("session_id", snap.SessionID).
			Str("phase", snap.Phase.String()).
			Int("remaining_s", int(snap.Remaining.Seconds())).
			Int("typed", len([]rune(snap.Input))).
			Int("prompt_len", len([]rune(snap.Prompt)))
		if ev == session.EventEnded {
			e = e.Int("wpm", snap.Results.WPM).Int("accuracy", snap.Results.Accuracy)
		}
		e.Msg("session event")
	}
}
