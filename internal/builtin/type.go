// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package builtin

import (
	"fmt"
	"io"

	"github.com/jeranaias/rigsh/internal/lookup"
)

// Type reports whether a name is a shell builtin, a PATH executable, or
// unknown. The registry reference is read-only and set after the registry
// itself is finished.
type Type struct {
	out      io.Writer
	registry *Registry
	resolver *lookup.Resolver
}

func (c *Type) Name() string { return "type" }

func (c *Type) Execute(args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(c.out, "type: usage: type <command>")
		return nil
	}

	name := args[0]
	if c.registry.Has(name) {
		fmt.Fprintf(c.out, "%s is a shell builtin\n", name)
	} else if path, ok := c.resolver.Resolve(name); ok {
		fmt.Fprintf(c.out, "%s is %s\n", name, path)
	} else {
		fmt.Fprintf(c.out, "%s: not found\n", name)
	}
	return nil
}
