// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("with custom logger", func(t *testing.T) {
		l := slog.New(slog.NewTextHandler(os.Stdout, nil))
		ctx := New(context.Background(), l)
		assert.Same(t, l, Logger(ctx))
	})

	t.Run("with nil logger should use default", func(t *testing.T) {
		ctx := New(context.Background(), nil)
		assert.Same(t, DefaultLogger, Logger(ctx))
	})
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name          string
		setupContext  func() context.Context
		expectDefault bool
	}{
		{
			name: "context with logger",
			setupContext: func() context.Context {
				return New(context.Background(), slog.New(slog.NewTextHandler(os.Stdout, nil)))
			},
		},
		{
			name:          "context without logger",
			setupContext:  context.Background,
			expectDefault: true,
		},
		{
			name: "context with nil logger value",
			setupContext: func() context.Context {
				return context.WithValue(context.Background(), loggerKey{}, nil)
			},
			expectDefault: true,
		},
		{
			name: "context with wrong type value",
			setupContext: func() context.Context {
				return context.WithValue(context.Background(), loggerKey{}, "not a logger")
			},
			expectDefault: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := Logger(tt.setupContext())
			require.NotNil(t, logger)

			if tt.expectDefault {
				assert.Same(t, DefaultLogger, logger)
				return
			}

			assert.NotSame(t, DefaultLogger, logger)
		})
	}
}

func TestLoggingFunctions(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	ctx := New(context.Background(), logger)

	tests := []struct {
		name     string
		logFunc  func(context.Context, string, ...any)
		message  string
		expected string
	}{
		{name: "Info logging", logFunc: Info, message: "test info message", expected: "INFO"},
		{name: "Debug logging", logFunc: Debug, message: "test debug message", expected: "DEBUG"},
		{name: "Warn logging", logFunc: Warn, message: "test warning message", expected: "WARN"},
		{name: "Error logging", logFunc: Error, message: "test error message", expected: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.logFunc(ctx, tt.message, "key", "value")

			assert.Contains(t, buf.String(), tt.expected)
			assert.Contains(t, buf.String(), tt.message)
			assert.Contains(t, buf.String(), "key=value")
		})
	}
}

func TestLogLevelFromEnv(t *testing.T) {
	tests := []struct {
		envValue      string
		expectedLevel slog.Level
	}{
		{envValue: "DEBUG", expectedLevel: slog.LevelDebug},
		{envValue: "debug", expectedLevel: slog.LevelDebug},
		{envValue: "INFO", expectedLevel: slog.LevelInfo},
		{envValue: "WARN", expectedLevel: slog.LevelWarn},
		{envValue: "ERROR", expectedLevel: slog.LevelError},
		{envValue: "INVALID", expectedLevel: slog.LevelWarn},
		{envValue: "", expectedLevel: slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run("level "+tt.envValue, func(t *testing.T) {
			t.Setenv(envVarName(executable(), logLevelSuffix), tt.envValue)
			assert.Equal(t, tt.expectedLevel, logLevelFromEnv())
		})
	}
}

func TestEnvVarName(t *testing.T) {
	tests := []struct {
		exe    string
		suffix string
		want   string
	}{
		{exe: "palette", suffix: logLevelSuffix, want: "PALETTE_LOG_LEVEL"},
		{exe: "palette.exe", suffix: logLevelSuffix, want: "PALETTE_LOG_LEVEL"},
		{exe: "palette", suffix: logFormatSuffix, want: "PALETTE_LOG_FORMAT"},
		{exe: "my-editor", suffix: logLevelSuffix, want: "MY-EDITOR_LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.exe+tt.suffix, func(t *testing.T) {
			assert.Equal(t, tt.want, envVarName(tt.exe, tt.suffix))
		})
	}
}

func TestFromEnv(t *testing.T) {
	name := envVarName(executable(), logFormatSuffix)

	t.Setenv(name, "json")
	assert.Same(t, JSONLogger, FromEnv())

	t.Setenv(name, " JSON ")
	assert.Same(t, JSONLogger, FromEnv())

	t.Setenv(name, "")
	assert.Same(t, DefaultLogger, FromEnv())

	t.Setenv(name, "text")
	assert.Same(t, DefaultLogger, FromEnv())
}

func TestNewForTUI(t *testing.T) {
	original := LevelVar.Level()
	defer LevelVar.Set(original)

	LevelVar.Set(slog.LevelInfo)

	var buf bytes.Buffer

	ctx := NewForTUI(context.Background(), &buf)
	Info(ctx, "buffered while the palette is open", "command", "editor.save")

	assert.Contains(t, buf.String(), "buffered while the palette is open")
	assert.Contains(t, buf.String(), "editor.save")
	assert.NotContains(t, buf.String(), "\033[", "TUI logger must not emit colour codes")
}

func TestLoggingWithDefaultLogger(t *testing.T) {
	ctx := context.Background()

	assert.NotPanics(t, func() {
		Info(ctx, "test info")
		Debug(ctx, "test debug")
		Warn(ctx, "test warn")
		Error(ctx, "test error")
	})
}
