// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package builtin

import (
	"fmt"
	"io"
	"strings"
)

// Echo prints its arguments joined by single spaces.
type Echo struct {
	out io.Writer
}

func (c *Echo) Name() string { return "echo" }

func (c *Echo) Execute(args []string) error {
	fmt.Fprintln(c.out, strings.Join(args, " "))
	return nil
}
