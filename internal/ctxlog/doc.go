// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a *slog.Logger in a context.Context.
//
// The command manager reports its diagnostics (duplicate registrations,
// unknown commands, host failures) through the logger found in the context, so
// callers decide where they go: the pretty console handler, JSON, or a buffer
// while the palette TUI owns the terminal.
//
// Settings are read from environment variables named after the executable.
// For the palette binary the level comes from PALETTE_LOG_LEVEL and defaults
// to WARN. PALETTE_LOG_FORMAT=json selects JSON records over the console
// handler.
package ctxlog
