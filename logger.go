package shell

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for shell and its sub-packages.
// By default, shell produces no log output.
//
// The logger is the only piece of shell state that may be touched from
// any goroutine; everything else is confined to the host event pump.
// Pass nil to restore the default silent behavior.
//
// Log levels used by shell:
//   - [slog.LevelDebug]: dropped events (no surface, no callback, multitouch
//     disabled) and configuration changes that only apply to the next surface
//   - [slog.LevelInfo]: surface lifecycle transitions and the resolved
//     rendering API
//   - [slog.LevelWarn]: host protocol violations and empty orientation sets
//
// Example:
//
//	shell.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by shell.
// Sub-packages (platform/headless, integration/gpuevents) call this to share
// the same logger configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
