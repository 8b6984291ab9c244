// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package host

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/matt-FFFFFF/palette/internal/commandmanager"
	"github.com/matt-FFFFFF/palette/internal/ctxlog"
)

const (
	goosWindows          = "windows"
	commandSwitchWindows = "/C"
	commandSwitchUnix    = "-c"
	winSystem32          = "System32"
	cmdExe               = "cmd.exe"
	binSh                = "/bin/sh"
	winSystemRootEnv     = "SystemRoot"
)

var (
	// ErrEmptyCommand is returned when the host is asked to run an empty command line.
	ErrEmptyCommand = errors.New("empty host command")
	// ErrHostCommand is returned when the command line could not be started or exited non-zero.
	ErrHostCommand = errors.New("host command failed")
)

var _ commandmanager.Host = (*Shell)(nil)

// Shell runs host commands as command lines of a shell.
type Shell struct {
	// Shell is the interpreter followed by its "run a string" switch,
	// e.g. ["/bin/bash", "-c"]. Defaults to DefaultShell.
	Shell  []string
	Dir    string            // Working directory, the process cwd when empty
	Env    map[string]string // Added to the inherited environment
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewShell returns a Shell using the default interpreter and the process stdio.
func NewShell() *Shell {
	return &Shell{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// DefaultShell returns cmd.exe /C on Windows and /bin/sh -c elsewhere.
func DefaultShell() []string {
	if runtime.GOOS == goosWindows {
		systemRoot := os.Getenv(winSystemRootEnv)
		if systemRoot == "" {
			systemRoot = `C:\Windows`
		}

		return []string{fmt.Sprintf(`%s\%s\%s`, systemRoot, winSystem32, cmdExe), commandSwitchWindows}
	}

	return []string{binSh, commandSwitchUnix}
}

// Command implements commandmanager.Host. It blocks until the command exits
// or ctx is cancelled, in which case the process is killed.
func (s *Shell) Command(ctx context.Context, command string) error {
	if strings.TrimSpace(command) == "" {
		return ErrEmptyCommand
	}

	shell := s.Shell
	if len(shell) == 0 {
		shell = DefaultShell()
	}

	args := append(append([]string{}, shell[1:]...), command)

	cmd := exec.CommandContext(ctx, shell[0], args...)
	cmd.Dir = s.Dir
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	if len(s.Env) > 0 {
		cmd.Env = os.Environ()
		for k, v := range s.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	ctxlog.Debug(ctx, "running host command", "shell", shell[0], "args", args, "cwd", s.Dir)

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Join(ErrHostCommand, ctxErr)
		}

		return fmt.Errorf("%w: %q: %w", ErrHostCommand, command, err)
	}

	return nil
}
