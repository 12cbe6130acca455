package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/tasker-api/internal/config"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
	}{
		{name: "debug level", logLevel: "debug"},
		{name: "info level", logLevel: "info"},
		{name: "warn level", logLevel: "warn"},
		{name: "error level", logLevel: "error"},
		{name: "case insensitive", logLevel: "INFO"},
		{name: "invalid level falls back to info", logLevel: "verbose"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tc.logLevel})
			require.NoError(t, err)
			require.NotNil(t, logger)
			assert.Same(t, logger, slog.Default())
		})
	}
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	stored := slog.Default().With("trace_id", "abc123")
	ctx := WithContext(context.Background(), stored)

	assert.Same(t, stored, FromContext(ctx))

	t.Run("missing logger falls back to default", func(t *testing.T) {
		t.Parallel()
		assert.Same(t, slog.Default(), FromContext(context.Background()))
	})

	t.Run("explicit fallback is used", func(t *testing.T) {
		t.Parallel()
		fallback := slog.Default().With("component", "test")
		assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))
		assert.Same(t, stored, FromContextOrDefault(ctx, fallback))
	})
}
