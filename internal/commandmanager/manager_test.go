// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commandmanager

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/matt-FFFFFF/palette/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logCtx returns a context whose logger writes text records to the returned buffer.
func logCtx() (context.Context, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctxlog.New(context.Background(), logger), buf
}

func TestExecute_InvokesOnceAndReturnsResult(t *testing.T) {
	ctx, _ := logCtx()
	m := New()

	calls := 0

	var gotArg any

	require.NoError(t, m.Register(ctx, NewCallbackCommand("editor.save", "Save", "Write the buffer",
		func(_ context.Context, arg any) any {
			calls++
			gotArg = arg

			return "saved"
		})))

	res, ok := m.Execute(ctx, "editor.save", "main.go")

	assert.True(t, ok)
	assert.Equal(t, "saved", res)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "main.go", gotArg)

	_, ok = m.Execute(ctx, "editor.save", nil)
	assert.True(t, ok)
	assert.Equal(t, 2, calls)
	assert.Nil(t, gotArg, "omitted argument arrives as nil")
}

func TestRegister_FirstRegistrationWins(t *testing.T) {
	ctx, logs := logCtx()
	m := New()

	first := NewCallbackCommand("editor.save", "Save", "first", func(context.Context, any) any { return "first" })
	second := NewCallbackCommand("editor.save", "Save Again", "second", func(context.Context, any) any { return "second" })

	require.NoError(t, m.Register(ctx, first))

	err := m.Register(ctx, second)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateCommand)
	assert.Contains(t, err.Error(), "editor.save")

	assert.Equal(t, 1, m.Len())

	res, ok := m.Execute(ctx, "editor.save", nil)
	assert.True(t, ok)
	assert.Equal(t, "first", res)

	cmd, ok := m.Lookup("editor.save")
	require.True(t, ok)
	assert.Same(t, first, cmd)

	assert.Contains(t, logs.String(), "level=ERROR")
	assert.Contains(t, logs.String(), "tried to register multiple commands")
	assert.Contains(t, logs.String(), "name=\"Save Again\"")
}

func TestRegister_Invalid(t *testing.T) {
	ctx, _ := logCtx()
	m := New()

	assert.ErrorIs(t, m.Register(ctx, nil), ErrInvalidCommand)
	assert.ErrorIs(t, m.Register(ctx, NewCallbackCommand("", "No key", "", nil)), ErrInvalidCommand)
	assert.Zero(t, m.Len())
}

func TestExecute_UnknownKey(t *testing.T) {
	ctx, logs := logCtx()
	m := New()

	calls := 0
	require.NoError(t, m.Register(ctx, NewCallbackCommand("editor.save", "Save", "", func(context.Context, any) any {
		calls++
		return nil
	})))

	res, ok := m.Execute(ctx, "editor.missing", "arg")

	assert.False(t, ok)
	assert.Nil(t, res)
	assert.Zero(t, calls)
	assert.Contains(t, logs.String(), "unable to find command")
	assert.Contains(t, logs.String(), "command=editor.missing")
}

func TestExecute_NilFunc(t *testing.T) {
	ctx, _ := logCtx()
	m := New()

	require.NoError(t, m.Register(ctx, NewCallbackCommand("noop", "No-op", "", nil)))

	res, ok := m.Execute(ctx, "noop", nil)
	assert.True(t, ok)
	assert.Nil(t, res)
}

func TestExecute_CarriesInvocationLogger(t *testing.T) {
	ctx, logs := logCtx()
	m := New()

	require.NoError(t, m.Register(ctx, NewCallbackCommand("editor.log", "Log", "", func(ctx context.Context, _ any) any {
		ctxlog.Info(ctx, "inside the command")
		return nil
	})))

	_, ok := m.Execute(ctx, "editor.log", nil)
	require.True(t, ok)

	assert.Regexp(t, `msg="inside the command" command=editor.log invocation=[0-9a-f-]{36}`, logs.String())
}

func TestExecute_Reentrant(t *testing.T) {
	ctx, _ := logCtx()
	m := New()

	require.NoError(t, m.Register(ctx, NewCallbackCommand("inner", "Inner", "", func(context.Context, any) any {
		return 42
	})))
	require.NoError(t, m.Register(ctx, NewCallbackCommand("outer", "Outer", "", func(ctx context.Context, _ any) any {
		res, _ := m.Execute(ctx, "inner", nil)
		return res
	})))

	res, ok := m.Execute(ctx, "outer", nil)
	assert.True(t, ok)
	assert.Equal(t, 42, res)
}

func TestTasks(t *testing.T) {
	ctx, _ := logCtx()
	m := New()

	const n = 5

	calls := make(map[string]int)

	for i := range n {
		key := fmt.Sprintf("cmd.%d", i)
		require.NoError(t, m.Register(ctx, NewCallbackCommand(key, fmt.Sprintf("Name %d", i), fmt.Sprintf("Detail %d", i),
			func(_ context.Context, arg any) any {
				calls[key]++
				assert.Nil(t, arg, "task callbacks take no argument")

				return key
			})))
	}

	ts, err := m.Tasks(ctx)
	require.NoError(t, err)
	require.Len(t, ts, n)

	seen := make(map[string]bool)

	for _, task := range ts {
		var i int

		_, err := fmt.Sscanf(task.Name, "Name %d", &i)
		require.NoError(t, err)

		assert.Equal(t, fmt.Sprintf("Detail %d", i), task.Detail)
		assert.Equal(t, fmt.Sprintf("cmd.%d", i), task.Run(ctx))

		seen[task.Name] = true
	}

	assert.Len(t, seen, n)

	for i := range n {
		assert.Equal(t, 1, calls[fmt.Sprintf("cmd.%d", i)])
	}
}

func TestTasks_Empty(t *testing.T) {
	ts, err := New().Tasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ts)
}

func TestTasks_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Tasks(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestKeys(t *testing.T) {
	ctx, _ := logCtx()
	m := New()

	for _, k := range []string{"b", "a", "c"} {
		require.NoError(t, m.Register(ctx, NewCallbackCommand(k, k, "", nil)))
	}

	assert.ElementsMatch(t, []string{"a", "b", "c"}, m.Keys())
}

func TestConcurrentRegisterAndExecute(t *testing.T) {
	ctx := context.Background()
	m := New()

	var wg sync.WaitGroup

	errs := make(chan error, 100)

	for i := range 100 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			errs <- m.Register(ctx, NewCallbackCommand(fmt.Sprintf("cmd.%d", i%10), "n", "", func(context.Context, any) any { return i }))
			m.Execute(ctx, fmt.Sprintf("cmd.%d", i%10), nil)
		}()
	}

	wg.Wait()
	close(errs)

	failures := 0

	for err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, ErrDuplicateCommand)

			failures++
		}
	}

	assert.Equal(t, 10, m.Len())
	assert.Equal(t, 90, failures)
}

func TestDefaultManager(t *testing.T) {
	old := Default
	Default = New()

	defer func() { Default = old }()

	ctx, _ := logCtx()

	require.NoError(t, Register(ctx, NewCallbackCommand("palette.version", "Version", "", func(context.Context, any) any {
		return "dev"
	})))

	res, ok := Execute(ctx, "palette.version", nil)
	assert.True(t, ok)
	assert.Equal(t, "dev", res)

	ts, err := Tasks(ctx)
	require.NoError(t, err)
	require.Len(t, ts, 1)
	assert.Equal(t, "Version", ts[0].Name)
}
