// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/matt-FFFFFF/palette/internal/commandmanager"
	"github.com/matt-FFFFFF/palette/internal/ctxlog"
)

var _ commandmanager.Command = (*AliasCommand)(nil)

// AliasCommand executes another command of the same manager, forwarding its argument.
type AliasCommand struct {
	key    string
	name   string
	detail string
	target string
	m      *commandmanager.Manager
}

// NewAliasCommand creates an alias of target on m.
func NewAliasCommand(key, name, detail, target string, m *commandmanager.Manager) *AliasCommand {
	return &AliasCommand{
		key:    key,
		name:   name,
		detail: detail,
		target: target,
		m:      m,
	}
}

// Key implements commandmanager.Command.
func (a *AliasCommand) Key() string { return a.key }

// Name implements commandmanager.Command.
func (a *AliasCommand) Name() string { return a.name }

// Detail implements commandmanager.Command.
func (a *AliasCommand) Detail() string { return a.detail }

// Target returns the key of the aliased command.
func (a *AliasCommand) Target() string { return a.target }

type aliasChainKey struct{}

// Execute implements commandmanager.Command. The result is ErrAliasTarget when
// the target is not registered and ErrAliasCycle when the alias is reached
// again through its own target.
func (a *AliasCommand) Execute(ctx context.Context, arg any) any {
	chain, _ := ctx.Value(aliasChainKey{}).([]string)

	if slices.Contains(chain, a.key) {
		path := strings.Join(append(slices.Clone(chain), a.key), " -> ")
		ctxlog.Error(ctx, "alias refers back to itself", "command", a.key, "path", path)

		return fmt.Errorf("%w: %s", ErrAliasCycle, path)
	}

	// copy so sibling executions never share the backing array
	next := append(slices.Clone(chain), a.key)

	res, ok := a.m.Execute(context.WithValue(ctx, aliasChainKey{}, next), a.target, arg)
	if !ok {
		return fmt.Errorf("%w: %s", ErrAliasTarget, a.target)
	}

	return res
}
