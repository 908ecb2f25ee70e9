package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/EduardoAlcebiades/curso-design-patterns--creational/internal/domain"
)

type Config struct {
	Debug bool
	// File, when set, receives JSON records appended to it.
	File string
	// Stderr receives text records in debug mode when File is empty.
	// Defaults to os.Stderr.
	Stderr io.Writer
}

var (
	mu      sync.RWMutex
	global  = discard()
	logFile *os.File
	logPath string
)

// Setup installs the global logger. Without Debug or File it stays silent.
// The returned cleanup restores the silent logger and closes the file.
func Setup(cfg Config) (func() error, error) {
	level := slog.LevelInfo
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	var (
		h    slog.Handler
		f    *os.File
		path string
	)

	switch {
	case cfg.File != "":
		path = filepath.Clean(cfg.File)
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				setDiscard()
				return nil, setupError(dir, err)
			}
		}

		var err error
		f, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			setDiscard()
			return nil, setupError(path, err)
		}

		h = slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level:     level,
			AddSource: addSource,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
					t := a.Value.Time().UTC()
					a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
				}
				return a
			},
		})
	case cfg.Debug:
		w := cfg.Stderr
		if w == nil {
			w = os.Stderr
		}
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level, AddSource: addSource})
	default:
		setDiscard()
		return func() error { return nil }, nil
	}

	l := slog.New(h)

	mu.Lock()
	global = l
	logFile = f
	logPath = path
	mu.Unlock()

	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		logFile = nil
		logPath = ""
		global = discard()
		return cerr
	}

	return cleanup, nil
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Path is the log file in use, or "" when logging elsewhere.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func setupError(path string, err error) error {
	return &domain.OpError{
		Op:   "logger.setup",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err),
	}
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func setDiscard() {
	mu.Lock()
	defer mu.Unlock()
	global = discard()
	logFile = nil
	logPath = ""
}
