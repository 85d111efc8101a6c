package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger carries edawatch diagnostics. It never writes to stdout, which
// belongs to the health report.
var Logger = newLogger(os.Stderr, false, slog.LevelInfo)

func newLogger(w io.Writer, jsonOutput bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if jsonOutput {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Setup points diagnostics and operator messages at w, or stderr when w
// is nil. verbose lowers the threshold to debug and jsonOutput emits one
// JSON object per line for log shippers.
func Setup(verbose, jsonOutput bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	Logger = newLogger(w, jsonOutput, level)
	userOut = w
}

// Debug records per-command and per-container detail, shown with --verbose.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Warn records a degraded step that still lets the run finish, such as a
// container whose inspect call failed.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}
