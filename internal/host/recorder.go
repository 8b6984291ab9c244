// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package host

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/matt-FFFFFF/palette/internal/commandmanager"
)

var _ commandmanager.Host = (*Recorder)(nil)

// Recorder is a host that keeps the commands it receives instead of running them.
// If Out is set each command is also printed to it. Used for --dry-run.
type Recorder struct {
	Out io.Writer

	mu       sync.Mutex
	commands []string
}

// Command implements commandmanager.Host.
func (r *Recorder) Command(_ context.Context, command string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.commands = append(r.commands, command)

	if r.Out != nil {
		if _, err := fmt.Fprintf(r.Out, "host: %s\n", command); err != nil {
			return err
		}
	}

	return nil
}

// Commands returns a copy of the received commands, oldest first.
func (r *Recorder) Commands() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.commands)
}
