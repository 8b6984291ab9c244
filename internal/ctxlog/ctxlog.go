// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	logLevelSuffix  = "_LOG_LEVEL"
	logFormatSuffix = "_LOG_FORMAT"
)

type loggerKey struct{}

// LevelVar is shared by every logger created by this package.
var LevelVar = &slog.LevelVar{}

// DefaultLogger is the pretty console logger used when the context has none.
var DefaultLogger = slog.New(NewPrettyHandler(&slog.HandlerOptions{
	Level: LevelVar,
},
	WithAutoColour(),
	WithDestinationWriter(os.Stderr),
))

// JSONLogger writes JSON records to stderr, for non-interactive use.
// FromEnv selects it when <EXE>_LOG_FORMAT is json.
var JSONLogger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
	Level: LevelVar,
}))

func init() {
	LevelVar.Set(logLevelFromEnv())
}

// FromEnv returns JSONLogger when the <EXE>_LOG_FORMAT environment variable
// is json, otherwise DefaultLogger.
func FromEnv() *slog.Logger {
	if strings.EqualFold(strings.TrimSpace(os.Getenv(envVarName(executable(), logFormatSuffix))), "json") {
		return JSONLogger
	}

	return DefaultLogger
}

// New returns a copy of ctx carrying logger.
// A nil logger stores DefaultLogger.
func New(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = DefaultLogger
	}

	return context.WithValue(ctx, loggerKey{}, logger)
}

// NewForTUI returns a context whose logger writes uncoloured records to w.
// Use it while a full screen program owns the terminal and flush w afterwards.
func NewForTUI(ctx context.Context, w io.Writer) context.Context {
	logger := slog.New(NewPrettyHandler(&slog.HandlerOptions{
		Level: LevelVar,
	},
		WithDestinationWriter(w),
	))

	return New(ctx, logger)
}

// Logger returns the logger from the context, or the default logger if not found.
func Logger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return DefaultLogger
	}

	return logger
}

// Info logs at INFO using the logger in ctx.
func Info(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Info(msg, args...)
}

// Debug logs at DEBUG using the logger in ctx.
func Debug(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Debug(msg, args...)
}

// Warn logs at WARN using the logger in ctx.
func Warn(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Warn(msg, args...)
}

// Error logs at ERROR using the logger in ctx.
func Error(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Error(msg, args...)
}

func logLevelFromEnv() slog.Level {
	switch strings.ToUpper(strings.TrimSpace(os.Getenv(envVarName(executable(), logLevelSuffix)))) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// executable returns the base name of the running binary, "palette" if unknown.
func executable() string {
	exe, err := os.Executable()
	if err != nil {
		return "palette"
	}

	return filepath.Base(exe)
}

// envVarName derives an environment variable name from the executable name,
// e.g. palette.exe and _LOG_LEVEL give PALETTE_LOG_LEVEL.
func envVarName(exe, suffix string) string {
	exe = strings.TrimSuffix(exe, ".exe")

	return strings.ToUpper(exe + suffix)
}
