// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for palette.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/palette"
	"github.com/matt-FFFFFF/palette/cmd/cmdstate"
	"github.com/matt-FFFFFF/palette/cmd/execute"
	"github.com/matt-FFFFFF/palette/cmd/list"
	"github.com/matt-FFFFFF/palette/cmd/repl"
	"github.com/matt-FFFFFF/palette/cmd/ui"
	"github.com/matt-FFFFFF/palette/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

const (
	configFlag   = "config"
	dryRunFlag   = "dry-run"
	shellFlag    = "shell"
	configEnvVar = "PALETTE_CONFIG"
)

// RootCmd is the root command for the CLI.
var RootCmd = New()

// New returns a fresh root command with all subcommands.
func New() *cli.Command {
	return &cli.Command{
		Commands: []*cli.Command{
			list.New(),
			execute.New(),
			ui.New(),
			repl.New(),
		},
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Name:      "palette",
		Version:   fmt.Sprintf("%s (commit: %s)", palette.Version, palette.Commit),
		Description: `Palette is a command registry with a command palette.
Commands are registered under a unique key with a display name and detail,
and can be listed, searched, executed by key, or picked interactively.

Command files are YAML, TOML or HCL. Their URLs use Hashicorp's go-getter
syntax, which allows for fetching files from various sources.
See https://github.com/hashicorp/go-getter.`,
		Usage:     "palette -c commands.yaml ui",
		Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		Authors: []any{
			"Matt White (matt-FFFFFF)",
		},
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    configFlag,
				Aliases: []string{"c"},
				Usage: "URL of a command file to load. " +
					"Supports Hashicorp's go-getter syntax. " +
					"Specify multiple times to load multiple files.",
				Sources: cli.EnvVars(configEnvVar),
			},
			&cli.BoolFlag{
				Name:        dryRunFlag,
				Aliases:     []string{"n"},
				Usage:       "Print host commands instead of running them",
				Value:       false,
				DefaultText: "false",
				OnlyOnce:    true,
			},
			&cli.StringFlag{
				Name:     shellFlag,
				Usage:    `Shell used for host commands, e.g. "/bin/bash -c"`,
				OnlyOnce: true,
			},
		},
		Before: before,
	}
}

// before builds the command manager from the global flags.
func before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	m, err := cmdstate.Build(ctx, cmdstate.Options{
		Configs: cmd.StringSlice(configFlag),
		DryRun:  cmd.Bool(dryRunFlag),
		Shell:   cmd.String(shellFlag),
		Out:     cmd.Writer,
		Err:     cmd.ErrWriter,
	})
	if err != nil {
		ctxlog.Error(ctx, "failed to build command registry", "error", err)
		return ctx, cli.Exit(err.Error(), 1)
	}

	ctxlog.Debug(ctx, "command registry ready", "commands", m.Len())

	return cmdstate.WithManager(ctx, m), nil
}
