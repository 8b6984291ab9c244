// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commandmanager

import (
	"context"
	"errors"

	"github.com/matt-FFFFFF/palette/internal/ctxlog"
)

// ErrNoHost is returned by a HostCommand constructed without a host.
var ErrNoHost = errors.New("host command has no host to run on")

// Host is the part of the host application that commands can drive:
// a single method taking one command string.
type Host interface {
	Command(ctx context.Context, command string) error
}

// HostFunc adapts a function to the Host interface.
type HostFunc func(ctx context.Context, command string) error

// Command implements Host.
func (f HostFunc) Command(ctx context.Context, command string) error {
	return f(ctx, command)
}

var _ Command = (*HostCommand)(nil)

// HostCommand is a Command that sends a fixed command string to a Host.
type HostCommand struct {
	key         string
	name        string
	detail      string
	hostCommand string
	host        Host
}

// NewHostCommand creates a HostCommand that sends hostCommand to host when executed.
func NewHostCommand(key, name, detail, hostCommand string, host Host) *HostCommand {
	return &HostCommand{
		key:         key,
		name:        name,
		detail:      detail,
		hostCommand: hostCommand,
		host:        host,
	}
}

// Key implements Command.
func (c *HostCommand) Key() string { return c.key }

// Name implements Command.
func (c *HostCommand) Name() string { return c.name }

// Detail implements Command.
func (c *HostCommand) Detail() string { return c.detail }

// HostCommand returns the string sent to the host.
func (c *HostCommand) HostCommand() string { return c.hostCommand }

// Execute implements Command. The argument is ignored; the result is the
// host's error, nil on success.
func (c *HostCommand) Execute(ctx context.Context, _ any) any {
	if c.host == nil {
		ctxlog.Error(ctx, "host command has no host", "command", c.key)
		return ErrNoHost
	}

	if err := c.host.Command(ctx, c.hostCommand); err != nil {
		ctxlog.Error(ctx, "host command failed", "command", c.key, "hostCommand", c.hostCommand, "error", err)
		return err
	}

	return nil
}
