// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package list implements the list subcommand.
package list

import (
	"context"
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/TylerBrock/colorjson"
	"github.com/matt-FFFFFF/palette/cmd/cmdstate"
	"github.com/matt-FFFFFF/palette/internal/commandmanager"
	"github.com/matt-FFFFFF/palette/internal/color"
	"github.com/matt-FFFFFF/palette/internal/ctxlog"
	"github.com/matt-FFFFFF/palette/internal/tasks"
	"github.com/urfave/cli/v3"
)

const (
	filterFlag = "filter"
	jsonFlag   = "json"
	keysFlag   = "keys"
)

// New returns the list command.
func New() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the registered commands",
		Description: `List the registered commands as palette tasks: name and detail.
With --filter the list is searched and ranked the same way the palette does.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     filterFlag,
				Aliases:  []string{"f"},
				Usage:    "Only show commands matching the query",
				OnlyOnce: true,
			},
			&cli.BoolFlag{
				Name:        jsonFlag,
				Usage:       "Write the list as JSON",
				Value:       false,
				DefaultText: "false",
				OnlyOnce:    true,
			},
			&cli.BoolFlag{
				Name:        keysFlag,
				Usage:       "Write only the command keys, sorted or ranked by --filter",
				Value:       false,
				DefaultText: "false",
				OnlyOnce:    true,
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

	w := cmd.Root().Writer

	if cmd.Bool(keysFlag) {
		return cmdstate.WriteResult(w, filterKeys(m, cmd.String(filterFlag)))
	}

	ts, err := tasks.Collect(ctx, m)
	if err != nil {
		ctxlog.Warn(ctx, "some commands could not be listed", "error", err)
	}

	matches := tasks.Filter(ts, cmd.String(filterFlag))

	if cmd.Bool(jsonFlag) {
		return writeJSON(cmd, matches)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd
	for _, match := range matches {
		fmt.Fprintf(tw, "%s\t%s\n", match.Name, match.Detail) //nolint:errcheck
	}

	return tw.Flush()
}

func writeJSON(cmd *cli.Command, matches []tasks.Match) error {
	out := make([]any, 0, len(matches))

	for _, match := range matches {
		out = append(out, map[string]any{
			"name":   match.Name,
			"detail": match.Detail,
			"score":  float64(match.Score),
		})
	}

	// colorjson renders numbers only as float64.
	f := colorjson.NewFormatter()
	f.Indent = 2
	f.DisabledColor = !color.Enabled()

	b, err := f.Marshal(out)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to marshal commands: %s", err.Error()), 1)
	}

	_, err = fmt.Fprintf(cmd.Root().Writer, "%s\n", b)

	return err
}

// filterKeys returns the sorted keys, or with a query the keys ranked against
// it. Both the key and the command name are searched.
func filterKeys(m *commandmanager.Manager, query string) []string {
	keys := m.Keys()
	slices.Sort(keys)

	ts := make([]tasks.Task, 0, len(keys))

	for _, k := range keys {
		t := tasks.Task{Name: k}
		if c, ok := m.Lookup(k); ok {
			t.Detail = c.Name()
		}

		ts = append(ts, t)
	}

	out := make([]string, 0, len(ts))
	for _, match := range tasks.Filter(ts, query) {
		out = append(out, match.Name)
	}

	return out
}
