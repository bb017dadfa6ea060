// Package logger provides the process-wide structured logger.
// Logs go to stderr as text so stdout stays clean for the report.
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

// Init configures the process logger at the given level.
// Accepted levels: debug, info, warn, error.
func Init(level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	current.Store(slog.New(h))
	return nil
}

// Get returns the configured logger. Safe to call before Init; the
// default logs at info.
func Get() *slog.Logger { return current.Load() }

// ParseLevel maps a level name to its slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", level)
	}
}
