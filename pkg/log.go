// Package pkg provides the logging and profiling infrastructure shared by
// lifesearch's cobra commands.
package pkg

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// component is attached to every log record emitted through the default
// logger, so search/watch/simulate output can be told apart in a shared log
// file or aggregator.
const component = "lifesearch"

// InitLog initializes the default slog logger with the given level, format
// (text/json), and destination file (empty means stdout). Every record it
// emits carries a component=lifesearch field.
func InitLog(level string, format string, file string) error {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo, // Default log level
	}

	// Set log level with validation
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		opts.Level = slog.LevelDebug
	case "info":
		opts.Level = slog.LevelInfo
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	var w io.Writer
	var err error

	if file == "" {
		w = os.Stdout
	} else {
		w, err = os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644) //nolint:gosec
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
	}

	var logger *slog.Logger
	// Configure log format
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		h := slog.NewJSONHandler(w, opts)
		logger = slog.New(h)
	case "text":
		h := slog.NewTextHandler(w, opts)
		logger = slog.New(h)
	default:
		h := slog.NewTextHandler(w, opts)
		logger = slog.New(h)
	}

	slog.SetDefault(logger.With("component", component))
	return nil
}
