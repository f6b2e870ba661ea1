package stackview

import (
	"log/slog"

	"github.com/BrandonKowalski/stackview/pkg/stackview/internal"
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before the first logger is requested to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.Logger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetLogLevel(internal.ParseLogLevel(level))
}

// SetLibraryLogLevel sets the level of the logger the stackview packages
// write to. It defaults to errors only unless STACKVIEW_DEBUG is set.
func SetLibraryLogLevel(level slog.Level) {
	internal.SetLibraryLogLevel(level)
}

// CloseLogger closes the log file, if any.
func CloseLogger() {
	internal.CloseLogger()
}
