// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matt-FFFFFF/palette/internal/tasks"
)

var (
	// ErrCancelled is returned when the palette is dismissed without a selection.
	ErrCancelled = errors.New("palette cancelled")
	// ErrNoTasks is returned when there is nothing to choose from.
	ErrNoTasks = errors.New("no commands registered")
	// ErrProgram is returned when the terminal program fails.
	ErrProgram = errors.New("palette program failed")
)

// Runner shows the palette and returns the user's choice.
type Runner struct {
	options []tea.ProgramOption
	mutex   sync.Mutex
}

// NewRunner creates a new palette runner. The program runs in the alternate
// screen; extra options are appended, which lets tests swap input and output.
func NewRunner(options ...tea.ProgramOption) *Runner {
	return &Runner{
		options: append([]tea.ProgramOption{tea.WithAltScreen()}, options...),
	}
}

// Run shows ts and blocks until the user selects one, cancels, or ctx is done.
// The task is returned, not run.
func (r *Runner) Run(ctx context.Context, ts []tasks.Task) (tasks.Task, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if len(ts) == 0 {
		return tasks.Task{}, ErrNoTasks
	}

	model := NewModel(ctx, ts)
	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, r.options...)
	program := tea.NewProgram(model, options...)

	final, err := program.Run()
	if err != nil {
		if ctx.Err() != nil {
			return tasks.Task{}, errors.Join(ErrCancelled, ctx.Err())
		}

		return tasks.Task{}, fmt.Errorf("%w: %w", ErrProgram, err)
	}

	m, ok := final.(*Model)
	if !ok {
		return tasks.Task{}, fmt.Errorf("%w: unexpected model type %T", ErrProgram, final)
	}

	t, ok := m.Selected()
	if !ok {
		return tasks.Task{}, ErrCancelled
	}

	return t, nil
}
