// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package commandmanager is the in-memory registry of palette commands.
//
// A command has a unique key, a display name, a detail line and an action.
// The first registration of a key wins: later registrations are logged and
// ignored. Executing an unknown key is logged and reports false.
//
// Two kinds of command are provided. CallbackCommand runs a Go function;
// HostCommand forwards a fixed command string to the host application
// through the Host interface.
//
// The Manager also implements tasks.Provider so the palette can list every
// registered command.
//
//	m := commandmanager.New()
//	_ = m.Register(ctx, commandmanager.NewCallbackCommand("editor.save", "Save", "Write the buffer", save))
//	res, ok := m.Execute(ctx, "editor.save", nil)
package commandmanager
