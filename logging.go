package ui

import (
	"log/slog"
	"os"
)

// uiLogLevel controls the log level for widget-layer debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var uiLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for UI components.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		uiLogLevel.Set(slog.LevelDebug)
	} else {
		uiLogLevel.Set(slog.LevelInfo)
	}
}

// uiLogger is the shared logger for widget-layer diagnostics. Geometry
// passes that hit a missing anchor are expected transients and stay
// silent; only programmer errors (dispatching into a navigator that was
// never opened, a child handle that never mounted) log at Error.
var uiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: uiLogLevel}))

// uiVerbose returns true if debug logging is enabled.
func uiVerbose() bool {
	return uiLogLevel.Level() <= slog.LevelDebug
}
