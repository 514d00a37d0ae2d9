// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package builtin

import (
	"io"

	"github.com/jeranaias/rigsh/internal/lookup"
)

// =============================================================================
// REGISTRY
// =============================================================================

// Registry holds the fixed set of builtins. It is built once at startup and
// never mutated afterwards; the type command keeps a read-only reference to
// it for membership checks.
type Registry struct {
	commands map[string]Command
	names    []string // registration order, for completion
}

// NewRegistry constructs the registry with all five builtins writing to
// out. The resolver serves the type command's PATH lookups.
func NewRegistry(out io.Writer, resolver *lookup.Resolver) *Registry {
	r := &Registry{
		commands: make(map[string]Command),
	}

	r.register(&Exit{out: out})
	r.register(&Echo{out: out})
	r.register(&Pwd{out: out})
	r.register(&Cd{out: out})
	// type needs the finished registry for builtin-ness checks, so it is
	// registered last with a back-reference.
	r.register(&Type{out: out, registry: r, resolver: resolver})

	return r
}

func (r *Registry) register(cmd Command) {
	r.commands[cmd.Name()] = cmd
	r.names = append(r.names, cmd.Name())
}

// Get retrieves a builtin by name.
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Has reports whether name is a builtin.
func (r *Registry) Has(name string) bool {
	_, ok := r.commands[name]
	return ok
}

// Names returns the builtin names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
