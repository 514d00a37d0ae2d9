// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package lookup locates executables on the PATH search list.
package lookup

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Resolver finds executables by scanning the directories named in the PATH
// environment variable. It holds no state beyond the filesystem it stats
// against, and re-reads PATH on every call: first PATH entry wins, and a
// change to PATH is visible on the next lookup.
type Resolver struct {
	fs afero.Fs
}

// New returns a Resolver that stats candidates against fsys.
func New(fsys afero.Fs) *Resolver {
	return &Resolver{fs: fsys}
}

// Resolve searches PATH in listed order for an executable regular file
// named name. It reports the first match; ok is false when PATH is unset,
// empty, or yields no executable match.
func (r *Resolver) Resolve(name string) (string, bool) {
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		info, err := r.fs.Stat(candidate)
		if err != nil {
			continue
		}
		if info.Mode().IsRegular() && info.Mode()&0111 != 0 {
			return candidate, true
		}
	}
	return "", false
}
