// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tasks

import (
	"cmp"
	"context"
	"slices"

	"github.com/hashicorp/go-multierror"
)

// Task is an entry in the palette.
type Task struct {
	Name     string                        // Name shown in the palette
	Detail   string                        // Secondary line, usually a description
	Callback func(ctx context.Context) any // Invoked when the task is picked
}

// Run invokes the callback and returns its result. A nil callback returns nil.
func (t Task) Run(ctx context.Context) any {
	if t.Callback == nil {
		return nil
	}

	return t.Callback(ctx)
}

// Provider supplies tasks to the palette.
type Provider interface {
	Tasks(ctx context.Context) ([]Task, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context) ([]Task, error)

// Tasks implements Provider.
func (f ProviderFunc) Tasks(ctx context.Context) ([]Task, error) {
	return f(ctx)
}

// Collect gathers the tasks of every provider, sorted by name then detail.
// A failing provider does not hide the others: its error is aggregated and
// returned alongside whatever the remaining providers produced.
func Collect(ctx context.Context, providers ...Provider) ([]Task, error) {
	var (
		all    []Task
		result *multierror.Error
	)

	for _, p := range providers {
		if p == nil {
			continue
		}

		if err := ctx.Err(); err != nil {
			result = multierror.Append(result, err)
			break
		}

		ts, err := p.Tasks(ctx)
		if err != nil {
			result = multierror.Append(result, err)
		}

		all = append(all, ts...)
	}

	SortByName(all)

	return all, result.ErrorOrNil()
}

// SortByName orders tasks by name, then detail.
func SortByName(ts []Task) {
	slices.SortStableFunc(ts, func(a, b Task) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.Detail, b.Detail))
	})
}
