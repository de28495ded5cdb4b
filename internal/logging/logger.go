// Package logging configures the file logger shared by every component.
// A full-screen terminal UI owns stdout, so logs never go to the terminal
// while the dashboard runs.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/heorconnect/heor-connect/internal/model"
	"github.com/sirupsen/logrus"
)

// Config selects the level, format and destination of the log.
type Config struct {
	Level  string // logrus level name; empty means info
	File   string // log file path; empty means DefaultPath()
	Format string // "text" or "json"
}

var (
	base   = newDiscardLogger()
	baseMu sync.RWMutex
)

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// DefaultPath returns ~/.local/state/heor-connect/heor-connect.log, or ""
// when the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "heor-connect", "heor-connect.log")
}

// Setup builds the shared logger from cfg and installs it for NewLogger.
// The returned func closes the log file.
func Setup(cfg Config) (*logrus.Logger, func(), error) {
	logger := logrus.New()

	levelStr := cfg.Level
	if levelStr == "" {
		levelStr = model.DefaultLogLevel
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", levelStr, err)
	}
	logger.SetLevel(level)

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	default:
		return nil, nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	path := cfg.File
	if path == "" {
		path = DefaultPath()
	}
	cleanup := func() {}
	if path == "" {
		logger.SetOutput(io.Discard)
	} else {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logger.SetOutput(f)
		cleanup = func() { _ = f.Close() }
	}

	baseMu.Lock()
	base = logger
	baseMu.Unlock()
	return logger, cleanup, nil
}

// NewLogger returns an entry tagged with component. Before Setup runs,
// entries discard their output.
func NewLogger(component string) *logrus.Entry {
	baseMu.RLock()
	defer baseMu.RUnlock()
	return base.WithField("component", component)
}
