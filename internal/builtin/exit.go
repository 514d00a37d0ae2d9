// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package builtin

import (
	"fmt"
	"io"
	"strconv"
)

// Exit terminates the shell with an optional integer exit code.
type Exit struct {
	out io.Writer
}

func (c *Exit) Name() string { return "exit" }

// Execute returns an ExitError carrying the requested code, or 0 when no
// argument is given. A non-integer argument is reported and the shell
// keeps running.
func (c *Exit) Execute(args []string) error {
	code := 0
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintln(c.out, "exit: Invalid exit code")
			return nil
		}
		code = n
	}
	return &ExitError{Code: code}
}
