// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tasks defines the lightweight descriptors shown by the command palette.
//
// A Task is a (name, detail, callback) triple. Providers such as the command
// manager hand out tasks; Collect merges several providers and Filter ranks
// tasks against what the user has typed.
package tasks
