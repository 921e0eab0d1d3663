// Package applog builds the charmbracelet loggers used across the arcade.
package applog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// DefaultFile is where terminal sessions log, keeping the alternate screen clean.
const DefaultFile = "~/.arcade/arcade.log"

// New creates a logger writing to w with a timestamp and prefix.
func New(w io.Writer, prefix string, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// OpenFile creates a logger appending to path. The returned closer must be
// called on exit. An empty path falls back to DefaultFile.
func OpenFile(path, prefix, level string) (*log.Logger, io.Closer, error) {
	if path == "" {
		path = DefaultFile
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("applog: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("applog: cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("applog: cannot open %s: %w", path, err)
	}
	return New(f, prefix, level), f, nil
}

// Discard returns a logger that drops everything. Used by tests and as a
// fallback when no log file can be opened.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
