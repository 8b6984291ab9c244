// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package repl

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/matt-FFFFFF/palette/cmd/cmdstate"
	"github.com/matt-FFFFFF/palette/internal/commandmanager"
	"github.com/matt-FFFFFF/palette/internal/ctxlog"
)

// Session interprets prompt lines against a manager.
type Session struct {
	m   *commandmanager.Manager
	out io.Writer
}

// NewSession returns a session writing results to out.
func NewSession(m *commandmanager.Manager, out io.Writer) *Session {
	return &Session{m: m, out: out}
}

// Handle executes one line and reports whether the session should end.
// The first word is the command key; the rest of the line, if any, is
// passed as the argument.
func (s *Session) Handle(ctx context.Context, input string) bool {
	input = strings.TrimSpace(input)

	switch input {
	case "quit", "exit":
		return true
	case "", "?":
		s.list()
		return false
	}

	key, rest, _ := strings.Cut(input, " ")

	var arg any
	if rest = strings.TrimSpace(rest); rest != "" {
		arg = rest
	}

	res, ok := s.m.Execute(ctx, key, arg)
	if !ok {
		fmt.Fprintf(s.out, "unknown command %q, type ? to list commands\n", key) //nolint:errcheck
		return false
	}

	if err := cmdstate.WriteResult(s.out, res); err != nil {
		ctxlog.Error(ctx, "command failed", "command", key, "error", err)
		fmt.Fprintf(s.out, "error: %s\n", err.Error()) //nolint:errcheck
	}

	return false
}

// Complete returns the keys starting with line, for tab completion.
func (s *Session) Complete(line string) []string {
	var out []string

	for _, k := range s.m.Keys() {
		if strings.HasPrefix(k, line) {
			out = append(out, k)
		}
	}

	slices.Sort(out)

	return out
}

func (s *Session) list() {
	keys := s.m.Keys()
	slices.Sort(keys)

	for _, k := range keys {
		c, ok := s.m.Lookup(k)
		if !ok {
			continue
		}

		fmt.Fprintf(s.out, "%-24s %s\n", k, c.Name()) //nolint:errcheck
	}
}
