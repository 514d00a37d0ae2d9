// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package builtin implements the shell's built-in commands.
package builtin

import "fmt"

// Command is a single builtin. Execute receives the arguments after the
// command name and writes any output itself; a non-nil error is reserved
// for control flow (see ExitError), not user-facing failures.
type Command interface {
	// Name returns the name the command is dispatched under.
	Name() string

	// Execute runs the command with the given arguments.
	Execute(args []string) error
}

// ExitError is returned by the exit builtin to request process
// termination. The REPL driver unwinds cleanly (saving history) before
// exiting with Code.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit %d", e.Code)
}
