// Package logging builds the structured loggers used by cityroute.
//
// Loggers are plain *slog.Logger values so library packages (planner)
// depend only on the standard interface; this package owns level parsing
// and handler selection for the CLI and tests.
//
//	logger := logging.New(logging.Config{Level: logging.LevelDebug})
//	logger.Info("location added", "name", "Kandy")
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level represents log severity levels, ordered Debug < Info < Warn < Error.
type Level int

const (
	// LevelDebug traces every mutation and query.
	LevelDebug Level = iota

	// LevelInfo reports rejected mutations and lifecycle events.
	LevelInfo

	// LevelWarn reports recoverable oddities.
	LevelWarn

	// LevelError reports invariant breaches.
	LevelError
)

// String returns "DEBUG", "INFO", "WARN", "ERROR" or "UNKNOWN".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel accepts debug, info, warn/warning and error, in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}

	return LevelInfo, fmt.Errorf("logging: unknown level %q", s)
}

// Config configures New. The zero value writes Info+ text to stderr.
type Config struct {
	// Level sets the minimum level. Default: LevelInfo.
	Level Level

	// JSON switches the handler to JSON output.
	JSON bool

	// Service, when set, is attached to every record as "service".
	Service string

	// Output overrides the destination. Default: os.Stderr.
	Output io.Writer
}

// New returns a logger for cfg.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level.toSlogLevel()}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}
	logger := slog.New(h)
	if cfg.Service != "" {
		logger = logger.With("service", cfg.Service)
	}

	return logger
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
