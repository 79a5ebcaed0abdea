package logger

import (
	"context"

	"go.uber.org/zap"
)

// contextKey is the private key under which a scoped logger travels.
type contextKey struct{}

// ToContext returns a context carrying l as the scoped logger.
func ToContext(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the scoped logger from ctx, falling back to the
// global logger when the context carries none.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if l, ok := ctx.Value(contextKey{}).(*zap.SugaredLogger); ok {
		return l
	}

	return Logger()
}

// WithName returns a context whose scoped logger is named after the
// component writing the entries.
func WithName(ctx context.Context, name string) context.Context {
	return ToContext(ctx, FromContext(ctx).Named(name))
}

// WithKV returns a context whose scoped logger attaches the given
// key-value pairs to every entry.
func WithKV(ctx context.Context, kvs ...any) context.Context {
	return ToContext(ctx, FromContext(ctx).With(kvs...))
}
