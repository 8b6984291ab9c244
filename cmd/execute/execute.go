// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package execute implements the exec subcommand.
package execute

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/palette/cmd/cmdstate"
	"github.com/urfave/cli/v3"
)

const (
	keyArg = "key"
	argArg = "arg"
)

// New returns the exec command.
func New() *cli.Command {
	return &cli.Command{
		Name:  "exec",
		Usage: "Execute a command by key",
		Description: `Execute the command registered under KEY, passing ARG if given.
The result of the command is printed unless it is empty.
Exits with status 1 if no command is registered under KEY or the command returns an error.`,
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      keyArg,
				UsageText: "KEY",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringArg{
				Name:      argArg,
				UsageText: " [ARG]",
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	m, err := cmdstate.Manager(ctx)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	key := cmd.StringArg(keyArg)
	if key == "" {
		return cli.Exit("Please provide the key of the command to execute", 1)
	}

	var arg any
	if a := cmd.StringArg(argArg); a != "" {
		arg = a
	}

	res, ok := m.Execute(ctx, key, arg)
	if !ok {
		return cli.Exit(fmt.Sprintf("no command registered for key %q", key), 1)
	}

	if err := cmdstate.WriteResult(cmd.Root().Writer, res); err != nil {
		return cli.Exit(fmt.Sprintf("command %s failed: %s", key, err.Error()), 1)
	}

	return nil
}
