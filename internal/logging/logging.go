// Package logging builds the structured logger shared by the frontends.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/clicker/internal/core"
)

// New returns a timestamped logger writing to w at the named level.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "clicker",
		Level:           lvl,
	})
	return logger, nil
}

// OpenFile opens path for appending log output.
func OpenFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// Events writes game events to logger. Hits are frequent, so they go to debug.
func Events(logger *log.Logger, events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventTargetHit:
			logger.Debug(ev.Kind.String(), ev.Fields...)
		default:
			logger.Info(ev.Kind.String(), ev.Fields...)
		}
	}
}
