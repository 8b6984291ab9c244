// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commandmanager

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/matt-FFFFFF/palette/internal/ctxlog"
	"github.com/matt-FFFFFF/palette/internal/tasks"
)

var (
	// ErrDuplicateCommand is returned when a key is already registered.
	// The existing command is kept.
	ErrDuplicateCommand = errors.New("tried to register multiple commands for key")
	// ErrInvalidCommand is returned for a nil command or a command without a key.
	ErrInvalidCommand = errors.New("invalid command")
)

var _ tasks.Provider = (*Manager)(nil)

// Manager holds the registered commands by key.
type Manager struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// New creates an empty Manager.
func New() *Manager {
	return &Manager{
		commands: make(map[string]Command),
	}
}

// Default is the process wide manager used by the package level helpers.
var Default = New()

// Register adds cmd under its key. If the key is taken the call logs a
// diagnostic and returns ErrDuplicateCommand; the first command stays.
func (m *Manager) Register(ctx context.Context, cmd Command) error {
	if cmd == nil || cmd.Key() == "" {
		ctxlog.Error(ctx, "refusing to register command without a key")
		return ErrInvalidCommand
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.commands[cmd.Key()]; exists {
		ctxlog.Error(ctx, "tried to register multiple commands", "command", cmd.Key(), "name", cmd.Name())
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, cmd.Key())
	}

	m.commands[cmd.Key()] = cmd
	ctxlog.Debug(ctx, "command registered", "command", cmd.Key(), "name", cmd.Name())

	return nil
}

// Lookup returns the command registered under key.
func (m *Manager) Lookup(key string) (Command, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cmd, ok := m.commands[key]

	return cmd, ok
}

// Len returns the number of registered commands.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.commands)
}

// Keys returns the registered keys in no particular order.
func (m *Manager) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.commands))
	for k := range m.commands {
		keys = append(keys, k)
	}

	return keys
}

// Execute runs the command registered under key with arg and returns its
// result. An unknown key is logged and returns (nil, false) without
// invoking anything.
//
// The manager lock is not held while the command runs, so a command may
// execute other commands on the same manager.
func (m *Manager) Execute(ctx context.Context, key string, arg any) (any, bool) {
	cmd, ok := m.Lookup(key)
	if !ok {
		ctxlog.Error(ctx, "unable to find command", "command", key)
		return nil, false
	}

	logger := ctxlog.Logger(ctx).With("command", key, "invocation", uuid.NewString())
	logger.Debug("executing command", "name", cmd.Name())

	res := cmd.Execute(ctxlog.New(ctx, logger), arg)

	logger.Debug("command finished", "result", fmt.Sprintf("%v", res))

	return res, true
}

// Tasks returns one task per registered command in no particular order.
// Each task executes its command without an argument.
func (m *Manager) Tasks(ctx context.Context) ([]tasks.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	ts := make([]tasks.Task, 0, len(m.commands))

	for key, cmd := range m.commands {
		ts = append(ts, tasks.Task{
			Name:   cmd.Name(),
			Detail: cmd.Detail(),
			Callback: func(ctx context.Context) any {
				res, _ := m.Execute(ctx, key, nil)
				return res
			},
		})
	}

	return ts, nil
}

// Register adds cmd to the Default manager.
func Register(ctx context.Context, cmd Command) error {
	return Default.Register(ctx, cmd)
}

// Execute runs key on the Default manager.
func Execute(ctx context.Context, key string, arg any) (any, bool) {
	return Default.Execute(ctx, key, arg)
}

// Tasks lists the tasks of the Default manager.
func Tasks(ctx context.Context) ([]tasks.Task, error) {
	return Default.Tasks(ctx)
}
