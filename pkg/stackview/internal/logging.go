// Package internal holds the plumbing shared by the stackview packages:
// logging, SDL window bootstrap, texture caching and theme values.
// Types and functions in this package are not part of the public API.
package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BrandonKowalski/stackview/pkg/stackview/constants"
)

var (
	logPath   string
	logFile   *os.File
	writerOut io.Writer
	writerOne sync.Once

	appOnce   sync.Once
	appLogger *slog.Logger
	appLevel  = new(slog.LevelVar)

	libOnce   sync.Once
	libLogger *slog.Logger
	libLevel  = new(slog.LevelVar)
)

// SetLogPath makes both loggers also write to the file at path.
// Must be called before the first logger is requested.
func SetLogPath(path string) {
	logPath = path
}

func output() io.Writer {
	writerOne.Do(func() {
		writerOut = os.Stdout
		if logPath == "" {
			return
		}

		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return
		}

		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return
		}
		logFile = f
		writerOut = io.MultiWriter(os.Stdout, f)
	})
	return writerOut
}

// Logger returns the application logger.
func Logger() *slog.Logger {
	appOnce.Do(func() {
		appLogger = slog.New(slog.NewJSONHandler(output(), &slog.HandlerOptions{Level: appLevel}))
	})
	return appLogger
}

// LibraryLogger returns the logger used by the stackview packages themselves.
// It is quiet (errors only) unless STACKVIEW_DEBUG is set.
func LibraryLogger() *slog.Logger {
	libOnce.Do(func() {
		if os.Getenv(constants.DebugEnvVar) != "" {
			libLevel.Set(slog.LevelDebug)
		} else {
			libLevel.Set(slog.LevelError)
		}
		handler := slog.NewJSONHandler(output(), &slog.HandlerOptions{Level: libLevel})
		libLogger = slog.New(handler).With("component", "stackview")
	})
	return libLogger
}

func SetLogLevel(level slog.Level) {
	appLevel.Set(level)
}

func SetLibraryLogLevel(level slog.Level) {
	libLevel.Set(level)
}

// ParseLogLevel maps "debug", "info", "warn"/"warning" and "error" to a level.
// Anything else is info.
func ParseLogLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
