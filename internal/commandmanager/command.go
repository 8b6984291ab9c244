// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commandmanager

import "context"

// Func is the action behind a command. arg is nil when the caller passed none.
type Func func(ctx context.Context, arg any) any

// Command is a named, described, invocable unit of functionality.
type Command interface {
	// Key uniquely identifies the command in a Manager.
	Key() string
	// Name is the human readable title shown in the palette.
	Name() string
	// Detail describes what the command does.
	Detail() string
	// Execute runs the command and returns its result.
	Execute(ctx context.Context, arg any) any
}

var _ Command = (*CallbackCommand)(nil)

// CallbackCommand is a Command backed by a Func.
type CallbackCommand struct {
	key    string
	name   string
	detail string
	fn     Func
}

// NewCallbackCommand creates a CallbackCommand. A nil fn does nothing and returns nil.
func NewCallbackCommand(key, name, detail string, fn Func) *CallbackCommand {
	return &CallbackCommand{
		key:    key,
		name:   name,
		detail: detail,
		fn:     fn,
	}
}

// Key implements Command.
func (c *CallbackCommand) Key() string { return c.key }

// Name implements Command.
func (c *CallbackCommand) Name() string { return c.name }

// Detail implements Command.
func (c *CallbackCommand) Detail() string { return c.detail }

// Execute implements Command.
func (c *CallbackCommand) Execute(ctx context.Context, arg any) any {
	if c.fn == nil {
		return nil
	}

	return c.fn(ctx, arg)
}
