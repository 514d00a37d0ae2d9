// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package complete generates tab-completion candidates for the line editor.
package complete

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// =============================================================================
// COMPLETER
// =============================================================================

// Completer computes completion candidates for a partially typed command
// line. It keeps the candidate list of the current completion cycle; the
// list is rebuilt whenever a cycle starts at state 0, so the engine is
// idempotent for a fixed buffer.
type Completer struct {
	fs       afero.Fs
	builtins []string

	// Cwd returns the directory relative listings resolve against.
	// Defaults to the process working directory.
	Cwd func() string

	matches []string
}

// New returns a Completer over fsys offering the given builtin names.
func New(fsys afero.Fs, builtins []string) *Completer {
	return &Completer{
		fs:       fsys,
		builtins: builtins,
		Cwd: func() string {
			if dir, err := os.Getwd(); err == nil {
				return dir
			}
			return "."
		},
	}
}

// Complete returns the state-th candidate for text. The candidate list is
// recomputed only when state is 0; ok is false once state runs past the
// end of the list.
func (c *Completer) Complete(text string, state int) (string, bool) {
	if state == 0 {
		c.matches = c.candidates(text)
	}
	if state >= 0 && state < len(c.matches) {
		return c.matches[state], true
	}
	return "", false
}

// Candidates returns the full candidate list for text in one call. Used by
// front ends that want the whole list rather than the stateful protocol.
func (c *Completer) Candidates(text string) []string {
	var all []string
	for i := 0; ; i++ {
		m, ok := c.Complete(text, i)
		if !ok {
			break
		}
		all = append(all, m)
	}
	return all
}

// =============================================================================
// CANDIDATE GENERATION
// =============================================================================

func (c *Completer) candidates(text string) []string {
	parts := strings.Fields(text)

	switch {
	case len(parts) == 0:
		// Empty buffer: every builtin plus everything here.
		return append(append([]string{}, c.builtins...), c.entryNames(".")...)

	case len(parts) == 1:
		prefix := parts[0]
		var matches []string
		for _, name := range c.builtins {
			if strings.HasPrefix(name, prefix) {
				matches = append(matches, name)
			}
		}
		for _, name := range c.entryNames(".") {
			if strings.HasPrefix(name, prefix) {
				matches = append(matches, name)
			}
		}
		return matches

	default:
		// Completion applies to the last token only, as a path fragment.
		frag := parts[len(parts)-1]
		if parts[len(parts)-2] == "cd" {
			return c.completePath(c.walkFragment(frag), frag)
		}
		return c.completePath(".", frag)
	}
}

// completePath lists dir and returns the entries whose names start with the
// final component of frag. Directory entries get a trailing separator.
// Candidate strings are rooted at dir so the editor inserts a usable path.
func (c *Completer) completePath(dir, frag string) []string {
	base := frag
	if i := strings.LastIndexByte(frag, '/'); i >= 0 {
		base = frag[i+1:]
	}

	var matches []string
	for _, name := range c.entryNames(dir) {
		if !strings.HasPrefix(name, base) {
			continue
		}
		candidate := name
		if dir != "." {
			candidate = filepath.Join(dir, name)
		}
		if c.isDir(filepath.Join(dir, name)) {
			candidate += "/"
		}
		matches = append(matches, candidate)
	}
	return matches
}

// walkFragment resolves the directory a cd path fragment refers to.
// Components are interpreted against the root (leading separator) or the
// current directory, with ".." moving to the parent. When the walked path
// is not a directory the fragment's last component is still being typed,
// so fall back to its parent, then to the current directory.
func (c *Completer) walkFragment(frag string) string {
	cur := "."
	if strings.HasPrefix(frag, "/") {
		cur = "/"
		frag = frag[1:]
	}

	for _, comp := range strings.Split(frag, "/") {
		switch comp {
		case "", ".":
		case "..":
			cur = filepath.Dir(cur)
		default:
			cur = filepath.Join(cur, comp)
		}
	}

	if c.isDir(cur) {
		return cur
	}
	if parent := filepath.Dir(cur); c.isDir(parent) {
		return parent
	}
	return "."
}

// =============================================================================
// FILESYSTEM HELPERS
// =============================================================================

// resolve maps a display path (".", "sub", "/usr") to the path used for
// filesystem access.
func (c *Completer) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if path == "." {
		return c.Cwd()
	}
	return filepath.Join(c.Cwd(), path)
}

func (c *Completer) entryNames(dir string) []string {
	entries, err := afero.ReadDir(c.fs, c.resolve(dir))
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

func (c *Completer) isDir(path string) bool {
	ok, err := afero.DirExists(c.fs, c.resolve(path))
	return err == nil && ok
}
