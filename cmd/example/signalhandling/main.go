// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main runs a long host command under the signal watchdog.
// The first Ctrl+C is ignored, the second cancels the command.
package main

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/palette/internal/commandmanager"
	"github.com/matt-FFFFFF/palette/internal/ctxlog"
	"github.com/matt-FFFFFF/palette/internal/host"
	"github.com/matt-FFFFFF/palette/internal/signalbroker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctx = ctxlog.New(ctx, ctxlog.FromEnv())

	sigCh := signalbroker.New(ctx)
	defer signalbroker.Stop(sigCh)

	go signalbroker.Watch(ctx, sigCh, cancel)

	m := commandmanager.New()

	if err := m.Register(ctx, commandmanager.NewHostCommand(
		"demo.sleep", "Sleep", "Wait for a while", "echo sleeping; sleep 30; echo done", host.NewShell(),
	)); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("Press Ctrl+C twice to cancel")

	res, _ := m.Execute(ctx, "demo.sleep", nil)
	fmt.Printf("result: %v\n", res)
}
