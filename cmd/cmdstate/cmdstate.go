// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmdstate builds the command manager shared by the subcommands and
// carries it in the context. The root command's Before hook creates it once,
// so every subcommand sees the same commands.
package cmdstate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/matt-FFFFFF/palette"
	"github.com/matt-FFFFFF/palette/internal/commandmanager"
	"github.com/matt-FFFFFF/palette/internal/config"
	"github.com/matt-FFFFFF/palette/internal/ctxlog"
	"github.com/matt-FFFFFF/palette/internal/host"
)

const (
	// VersionCommand returns the palette version.
	VersionCommand = "palette.version"
	// ListCommand returns the registered command keys.
	ListCommand = "palette.list"
)

var (
	// ErrNoManager is returned when the context carries no command manager.
	ErrNoManager = errors.New("command manager not initialised")
	// ErrLoadConfig is returned when a command file cannot be loaded.
	ErrLoadConfig = errors.New("failed to load command file")
)

type managerKey struct{}

// Options controls how Build creates the manager.
type Options struct {
	Configs []string  // Command file URLs, loaded in order
	DryRun  bool      // Print host commands instead of running them
	Shell   string    // Overrides the host shell, e.g. "/bin/bash -c"
	Out     io.Writer // Destination of dry run output and host stdout
	Err     io.Writer // Host stderr
}

// Build creates a manager with the built in commands and everything defined in
// opts.Configs. Files that cannot be loaded are fatal. Definitions that cannot
// be registered are logged and skipped, so one bad entry does not disable the
// rest.
func Build(ctx context.Context, opts Options) (*commandmanager.Manager, error) {
	m := commandmanager.New()

	if err := RegisterBuiltins(ctx, m); err != nil {
		return nil, err
	}

	doc := new(config.Document)

	for _, src := range opts.Configs {
		if src == "" {
			continue
		}

		d, err := config.LoadURL(ctx, src)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("%w: %s", ErrLoadConfig, src), err)
		}

		ctxlog.Debug(ctx, "command file loaded", "source", src, "commands", len(d.Commands))
		doc.Merge(d)
	}

	if err := config.Apply(ctx, m, doc, NewHost(opts)); err != nil {
		ctxlog.Warn(ctx, "command definitions skipped", "error", err)
	}

	return m, nil
}

// NewHost returns the host that host commands run on.
func NewHost(opts Options) commandmanager.Host {
	if opts.DryRun {
		return &host.Recorder{Out: opts.Out}
	}

	sh := host.NewShell()

	if opts.Shell != "" {
		sh.Shell = strings.Fields(opts.Shell)
	}

	if opts.Out != nil {
		sh.Stdout = opts.Out
	}

	if opts.Err != nil {
		sh.Stderr = opts.Err
	}

	return sh
}

// RegisterBuiltins registers the commands every palette has.
func RegisterBuiltins(ctx context.Context, m *commandmanager.Manager) error {
	return errors.Join(
		m.Register(ctx, commandmanager.NewCallbackCommand(VersionCommand, "Palette: Version",
			"Show the palette version", func(context.Context, any) any {
				return fmt.Sprintf("%s (commit: %s)", palette.Version, palette.Commit)
			})),
		m.Register(ctx, commandmanager.NewCallbackCommand(ListCommand, "Palette: List Commands",
			"List the keys of all registered commands", func(context.Context, any) any {
				keys := m.Keys()
				slices.Sort(keys)

				return keys
			})),
	)
}

// WithManager returns a copy of ctx carrying m.
func WithManager(ctx context.Context, m *commandmanager.Manager) context.Context {
	return context.WithValue(ctx, managerKey{}, m)
}

// Manager returns the manager stored by WithManager.
func Manager(ctx context.Context) (*commandmanager.Manager, error) {
	m, ok := ctx.Value(managerKey{}).(*commandmanager.Manager)
	if !ok || m == nil {
		return nil, ErrNoManager
	}

	return m, nil
}
