// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package host provides the hosts that host commands are sent to when the
// palette runs as a standalone CLI: Shell runs them as shell command lines,
// Recorder only records them.
package host
