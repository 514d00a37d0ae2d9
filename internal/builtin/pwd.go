// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package builtin

import (
	"fmt"
	"io"
	"os"
)

// Pwd prints the process working directory.
type Pwd struct {
	out io.Writer
}

func (c *Pwd) Name() string { return "pwd" }

func (c *Pwd) Execute(args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(c.out, "pwd: %v\n", err)
		return nil
	}
	fmt.Fprintln(c.out, dir)
	return nil
}
