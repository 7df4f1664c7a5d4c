package improc

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip attribute construction entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while detectors run on other goroutines.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for improc and its sub-packages.
// By default improc produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by improc:
//   - [slog.LevelDebug]: per-call diagnostics (candidate counts, pyramid
//     level sizes, suppression survivors, kernel cache misses, decoded
//     and saved image sizes)
//   - [slog.LevelInfo]: I/O events (loaded and shown images)
//   - [slog.LevelWarn]: degenerate inputs (an image too small for any ORB
//     level, a Harris response with no positive value)
//
// Example:
//
//	improc.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by improc.
// Sub-packages (filter, features) call this to share one configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
