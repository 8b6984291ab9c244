// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ui implements the interactive palette subcommand.
package ui

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matt-FFFFFF/palette/cmd/cmdstate"
	"github.com/matt-FFFFFF/palette/internal/ctxlog"
	"github.com/matt-FFFFFF/palette/internal/tasks"
	"github.com/matt-FFFFFF/palette/internal/tui"
	"github.com/urfave/cli/v3"
)

// ProgramOptions are passed to the palette program. Tests replace them to
// drive the palette without a terminal.
var ProgramOptions []tea.ProgramOption

// New returns the ui command.
func New() *cli.Command {
	return &cli.Command{
		Name:    "ui",
		Aliases: []string{"palette"},
		Usage:   "Pick a command from the interactive palette and run it",
		Description: `Open the command palette. Type to filter, use the arrow keys to move,
enter to run the selected command and esc to cancel.`,
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	m, err := cmdstate.Manager(ctx)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	ts, err := tasks.Collect(ctx, m)
	if err != nil {
		logger.Warn("some commands could not be listed", "error", err)
	}

	// logs are buffered while the palette owns the terminal
	buf := new(bytes.Buffer)
	tuiCtx := ctxlog.NewForTUI(ctx, buf)

	selected, err := tui.NewRunner(ProgramOptions...).Run(tuiCtx, ts)

	buf.WriteTo(cmd.Root().ErrWriter) //nolint:errcheck

	switch {
	case errors.Is(err, tui.ErrCancelled):
		logger.Info("palette cancelled")
		return nil
	case err != nil:
		return cli.Exit(fmt.Sprintf("palette failed: %s", err.Error()), 1)
	}

	logger.Info("running selected command", "name", selected.Name)

	if err := cmdstate.WriteResult(cmd.Root().Writer, selected.Run(ctx)); err != nil {
		return cli.Exit(fmt.Sprintf("%s failed: %s", selected.Name, err.Error()), 1)
	}

	return nil
}
