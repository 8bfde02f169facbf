package logger_test

import (
	"context"
	"testing"
	"travelcatalog/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		wantLevel   zapcore.Level
	}{
		{
			name:        "development defaults to debug",
			environment: logger.DevelopmentEnvironment,
			wantLevel:   zap.DebugLevel,
		},
		{
			name:        "production defaults to info",
			environment: logger.ProductionEnvironment,
			wantLevel:   zap.InfoLevel,
		},
		{
			name:        "explicit level wins",
			environment: logger.DevelopmentEnvironment,
			level:       "warn",
			wantLevel:   zap.WarnLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, logger.Setup(tt.environment, tt.level))

			l := logger.Get(context.Background())
			require.NotNil(t, l)
			require.Equal(t, tt.wantLevel, l.Level())
		})
	}
}

func TestSetup_InvalidLevel(t *testing.T) {
	require.Error(t, logger.Setup(logger.DevelopmentEnvironment, "loud"))
}

func TestGet(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))

	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx), "Should return default logger when context has no logger")

	customLogger, _ := zap.NewDevelopment()
	require.Equal(t, customLogger, logger.Get(logger.WithLogger(ctx, customLogger)))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("RequestID", "abc"))
	logger.Info(ctx, "hello")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "hello", entries[0].Message)
	require.Equal(t, "abc", entries[0].ContextMap()["RequestID"])
}

func TestIsDebug(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))
	ctx := context.Background()
	require.True(t, logger.IsDebug(ctx))

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	infoLogger, _ := cfg.Build()
	require.False(t, logger.IsDebug(logger.WithLogger(ctx, infoLogger)))
}

func TestSlog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Slog(ctx).Error("server error", "addr", ":7000")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "server error", entries[0].Message)
	require.Equal(t, zap.ErrorLevel, entries[0].Level)
}

func TestLoggingFunctions(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")
	logger.Sync(ctx)

	require.Equal(t, 4, logs.Len())
}
