// Package ctxlog carries the run's *slog.Logger in a context.Context.
//
// The CLI installs its handler with WithLogger before dispatching a query;
// solvers never read the context directly but go through
// reach.Options.LoggerFor, which prefers an explicit reach.WithLogger and
// falls back to FromContext. query.Run logs through FromContext as well.
package ctxlog

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// WithLogger returns a copy of ctx carrying l.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored by WithLogger, or slog.Default when
// ctx is nil or carries none.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
		return l
	}

	return slog.Default()
}
