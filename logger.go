package displaylist

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while display lists are dispatched on other
// goroutines.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for displaylist. The geom, bounds and
// rtree packages do not log. By default nothing is logged. Pass nil to
// restore the silent default.
//
// Events logged:
//   - "displaylist: built" at [slog.LevelDebug], once per Builder.Build,
//     with the id, ops, bytes and bounds of the new list
//   - "displaylist: recording is unbounded" at [slog.LevelInfo], from
//     Build when a draw may paint outside any finite cull rect, with the id
//   - "displaylist: <Op>" at [slog.LevelDebug], one per call replayed into
//     a trace dispatcher without its own logger, with the call arguments
//     and the nesting depth
//
// Example:
//
//	displaylist.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
