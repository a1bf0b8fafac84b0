// Package swiper lets draggable panels snap between discrete steps on touch
// surfaces.
//
// An Action owns one panel's axis: its steps, the drag state machine, the
// threshold and velocity rules that pick the step a release settles on, and
// the settle animation. A Dispatcher forwards the pointer events of one
// surface to its actions, skipping blocked ones. Everything runs on the
// host's own loop: the host delivers pointer events and calls Advance once
// per frame while actions are settling.
package swiper

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/swiper/pkg/swiper/constants"
	"github.com/BrandonKowalski/swiper/pkg/swiper/internal"
)

func init() {
	if constants.IsDevMode() || os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	}
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before the first action is created to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetDebugLogging turns drag tracing from the swiper packages on or off.
func SetDebugLogging(enabled bool) {
	if enabled {
		internal.SetInternalLogLevel(slog.LevelDebug)
		return
	}
	internal.SetInternalLogLevel(slog.LevelError)
}

// CloseLogger closes the log file, if one was opened.
func CloseLogger() {
	internal.CloseLogger()
}
