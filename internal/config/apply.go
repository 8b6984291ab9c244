// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/palette/internal/commandmanager"
	"github.com/matt-FFFFFF/palette/internal/ctxlog"
)

var (
	// ErrInvalidDefinition is returned for a definition that cannot become a command.
	ErrInvalidDefinition = errors.New("invalid command definition")
	// ErrAliasCycle is returned when aliases refer to each other in a loop.
	ErrAliasCycle = errors.New("circular alias")
	// ErrAliasTarget is the result of an alias whose target is not registered.
	ErrAliasTarget = errors.New("alias target not found")
)

// Apply registers every definition of doc with m. Host commands are sent to h.
// Problems with individual definitions, including duplicate keys, do not stop
// the others from being registered; they are returned together.
//
// The first valid definition of a key claims it; later ones are reported as
// duplicates. An alias is rejected when following targets through doc and the
// aliases already registered with m leads back to it.
func Apply(ctx context.Context, m *commandmanager.Manager, doc *Document, h commandmanager.Host) error {
	if doc == nil {
		return nil
	}

	var result *multierror.Error

	type candidate struct {
		index int
		cmd   commandmanager.Command
		owner bool
	}

	candidates := make([]candidate, 0, len(doc.Commands))
	claimed := make(map[string]bool)
	aliases := make(map[string]string)

	for i, d := range doc.Commands {
		cmd, err := build(m, d, h)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("command %d (%q): %w", i, d.Command, err))
			continue
		}

		owner := !claimed[d.Command]
		claimed[d.Command] = true

		if _, exists := m.Lookup(d.Command); exists {
			owner = false
		}

		if a, ok := cmd.(*AliasCommand); ok && owner {
			aliases[d.Command] = a.Target()
		}

		candidates = append(candidates, candidate{index: i, cmd: cmd, owner: owner})
	}

	for _, c := range candidates {
		if !c.owner {
			// Register reports the duplicate against the command already in m.
			if _, exists := m.Lookup(c.cmd.Key()); exists {
				if err := m.Register(ctx, c.cmd); err != nil {
					result = multierror.Append(result, err)
				}

				continue
			}

			result = multierror.Append(result, fmt.Errorf("command %d (%q): %w: %s",
				c.index, c.cmd.Key(), commandmanager.ErrDuplicateCommand, c.cmd.Key()))

			continue
		}

		if _, ok := c.cmd.(*AliasCommand); ok {
			if err := checkAliasCycle(c.cmd.Key(), aliasResolver(m, aliases)); err != nil {
				result = multierror.Append(result, fmt.Errorf("command %d (%q): %w", c.index, c.cmd.Key(), err))
				continue
			}
		}

		if err := m.Register(ctx, c.cmd); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		ctxlog.Warn(ctx, "some command definitions were not registered", "errors", len(result.Errors))
		return err
	}

	return nil
}

func build(m *commandmanager.Manager, d Definition, h commandmanager.Host) (commandmanager.Command, error) {
	if d.Command == "" {
		return nil, fmt.Errorf("%w: missing command key", ErrInvalidDefinition)
	}

	switch d.typeOrDefault() {
	case TypeHost:
		if d.HostCommand == "" {
			return nil, fmt.Errorf("%w: host command requires host_command", ErrInvalidDefinition)
		}

		return commandmanager.NewHostCommand(d.Command, d.nameOrDefault(), d.Detail, d.HostCommand, h), nil

	case TypeAlias:
		if d.Target == "" {
			return nil, fmt.Errorf("%w: alias requires target", ErrInvalidDefinition)
		}

		return NewAliasCommand(d.Command, d.nameOrDefault(), d.Detail, d.Target, m), nil

	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidDefinition, d.Type)
	}
}

// aliasResolver returns the target of key: pending aliases of the document
// first, then aliases already registered with m.
func aliasResolver(m *commandmanager.Manager, pending map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if target, ok := pending[key]; ok {
			return target, true
		}

		if cmd, ok := m.Lookup(key); ok {
			if a, ok := cmd.(*AliasCommand); ok {
				return a.Target(), true
			}
		}

		return "", false
	}
}

// checkAliasCycle follows the alias chain starting at key.
func checkAliasCycle(key string, resolve func(string) (string, bool)) error {
	path := []string{key}
	visited := map[string]bool{key: true}

	for next, ok := resolve(key); ok; next, ok = resolve(next) {
		path = append(path, next)

		if visited[next] {
			return fmt.Errorf("%w: %s", ErrAliasCycle, strings.Join(path, " -> "))
		}

		visited[next] = true
	}

	return nil
}
