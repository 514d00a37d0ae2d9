// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package builtin

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"syscall"
)

// Cd changes the process working directory. This is the only builtin with
// process-wide state: pwd and relative-path completion observe the change.
type Cd struct {
	out io.Writer
}

func (c *Cd) Name() string { return "cd" }

// Execute changes directory to the first argument, or to the home
// directory when called without one. On failure the working directory is
// left unchanged and a one-line cd: message is printed.
func (c *Cd) Execute(args []string) error {
	var target string
	if len(args) > 0 {
		target = args[0]
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(c.out, "cd: %v\n", err)
			return nil
		}
		target = home
	}

	if err := os.Chdir(target); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			fmt.Fprintf(c.out, "cd: %s: No such file or directory\n", target)
		case errors.Is(err, syscall.ENOTDIR):
			fmt.Fprintf(c.out, "cd: %s: Not a directory\n", target)
		default:
			fmt.Fprintf(c.out, "cd: %s: %v\n", target, err)
		}
	}
	return nil
}
