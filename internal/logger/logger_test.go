package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and the
// fallback for unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":  zapcore.DebugLevel,
		"info":   zapcore.InfoLevel,
		"WARN":   zapcore.WarnLevel,
		" error": zapcore.ErrorLevel,
		"fatal":  zapcore.FatalLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok, "input %q", s)
		require.Equal(t, lvl, got)
	}

	got, ok := ParseLogLevel("unknown")
	require.False(t, ok)
	require.Equal(t, zapcore.InfoLevel, got)
}

// TestFromContext_FallsBackToGlobal verifies a bare context resolves to the
// global logger while a scoped one wins over it.
func TestFromContext_FallsBackToGlobal(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))

	core, _ := observer.New(zapcore.DebugLevel)
	scoped := zap.New(core).Sugar()

	ctx := ToContext(context.Background(), scoped)
	require.Same(t, scoped, FromContext(ctx))
}

// TestWithName_ScopesEntries verifies WithName attaches the component name
// to entries written through the context.
func TestWithName_ScopesEntries(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	ctx := ToContext(context.Background(), zap.New(core).Sugar())
	ctx = WithName(ctx, "chime-test")

	Info(ctx, "hello")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "chime-test", entries[0].LoggerName)
}
