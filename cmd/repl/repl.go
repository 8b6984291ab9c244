// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package repl implements an interactive prompt that executes commands by key.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/matt-FFFFFF/palette/cmd/cmdstate"
	"github.com/peterh/liner"
	"github.com/urfave/cli/v3"
)

const prompt = "palette> "

// New returns the repl command.
func New() *cli.Command {
	return &cli.Command{
		Name:  "repl",
		Usage: "Execute commands from an interactive prompt",
		Description: `Start a prompt that executes commands by key.
Type KEY [ARG] to execute a command, tab to complete a key,
? or an empty line to list the commands, and quit, exit or Ctrl+C to leave.`,
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	m, err := cmdstate.Manager(ctx)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	s := NewSession(m, cmd.Root().Writer)

	line := liner.NewLiner()

	defer func() {
		_ = line.Close()
	}()

	line.SetCtrlCAborts(true)
	line.SetCompleter(s.Complete)

	fmt.Fprintln(s.out, "Type ? to list commands, `quit` or `exit` or Ctrl+C to quit.") //nolint:errcheck

	for ctx.Err() == nil {
		input, err := line.Prompt(prompt)

		switch {
		case errors.Is(err, liner.ErrPromptAborted), errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return cli.Exit(fmt.Sprintf("error reading line: %s", err.Error()), 1)
		}

		if s.Handle(ctx, input) {
			return nil
		}

		line.AppendHistory(input)
	}

	return nil
}
