// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker listens for the OS signals that should stop palette.
//
// Host commands can run for a long time. The watchdog ignores the first
// interrupt of a kind, so a shell command can handle it itself, and cancels
// the context on the second.
package signalbroker
