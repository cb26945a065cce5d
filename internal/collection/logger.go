package collection

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record and reports itself disabled, so
// formatting is skipped entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used for batch progress. Pass nil to silence
// logging again, which is the default.
//
// Levels:
//   - [slog.LevelDebug]: one record per finished token
//   - [slog.LevelInfo]: batch start, progress every 50 tokens, ranking, output paths
//   - [slog.LevelWarn]: failed tokens
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current batch logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
