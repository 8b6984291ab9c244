// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main shows how an editor embeds the command manager: plugins and
// the editor itself register commands on the default manager, and the
// palette executes them by key.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/matt-FFFFFF/palette/internal/commandmanager"
	"github.com/matt-FFFFFF/palette/internal/ctxlog"
	"github.com/matt-FFFFFF/palette/internal/host"
	"github.com/matt-FFFFFF/palette/internal/tasks"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ctx = ctxlog.New(ctx, ctxlog.FromEnv())

	// The host would normally be the editor process; print what it is asked to do.
	editor := &host.Recorder{Out: os.Stdout}

	commands := []commandmanager.Command{
		commandmanager.NewCallbackCommand("text.upper", "Text: Upper Case", "Upper case the argument",
			func(_ context.Context, arg any) any {
				s, _ := arg.(string)
				return strings.ToUpper(s)
			}),
		commandmanager.NewHostCommand("editor.save", "Save", "Write the current buffer", "w", editor),
		commandmanager.NewHostCommand("editor.quit", "Quit", "Close the editor", "q", editor),
		// Registered twice: the diagnostic is logged and the first one is kept.
		commandmanager.NewHostCommand("editor.save", "Save Again", "Never registered", "wall", editor),
	}

	for _, c := range commands {
		if err := commandmanager.Register(ctx, c); err != nil {
			fmt.Printf("register: %s\n", err)
		}
	}

	fmt.Println("\n=== Execute by key ===")

	res, _ := commandmanager.Execute(ctx, "text.upper", "hello")
	fmt.Printf("text.upper -> %v\n", res)

	commandmanager.Execute(ctx, "editor.save", nil)

	if _, ok := commandmanager.Execute(ctx, "editor.missing", nil); !ok {
		fmt.Println("editor.missing is not registered")
	}

	fmt.Println("\n=== Palette tasks ===")

	ts, err := tasks.Collect(ctx, commandmanager.Default)
	if err != nil {
		fmt.Printf("collect: %s\n", err)
	}

	for _, t := range ts {
		fmt.Printf("%-20s %s\n", t.Name, t.Detail)
	}

	fmt.Println("\n=== Search \"sa\" and run the best match ===")

	if matches := tasks.Filter(ts, "sa"); len(matches) > 0 {
		matches[0].Run(ctx)
	}
}
