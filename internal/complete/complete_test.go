// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package complete

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBuiltins = []string{"exit", "echo", "pwd", "cd", "type"}

// newTestCompleter builds a completer over an in-memory tree rooted at
// /work with /work as the working directory:
//
//	/work/docs/guide.md
//	/work/docs/notes/
//	/work/echo.txt
//	/work/main.go
//	/usr/share/
func newTestCompleter(t *testing.T) *Completer {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/work/docs/notes", 0755))
	require.NoError(t, fs.MkdirAll("/usr/share", 0755))
	require.NoError(t, afero.WriteFile(fs, "/work/docs/guide.md", []byte("x"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/work/echo.txt", []byte("x"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/work/main.go", []byte("x"), 0644))

	c := New(fs, testBuiltins)
	c.Cwd = func() string { return "/work" }
	return c
}

func TestEmptyBufferIncludesAllBuiltins(t *testing.T) {
	c := newTestCompleter(t)

	got := c.Candidates("")
	for _, name := range testBuiltins {
		assert.Contains(t, got, name)
	}
	// Current directory entries ride along.
	assert.Contains(t, got, "docs")
	assert.Contains(t, got, "main.go")
}

func TestSingleTokenPrefix(t *testing.T) {
	c := newTestCompleter(t)

	got := c.Candidates("ec")
	assert.Equal(t, []string{"echo", "echo.txt"}, got)

	got = c.Candidates("ty")
	assert.Equal(t, []string{"type"}, got)

	assert.Empty(t, c.Candidates("zz"))
}

func TestStatefulCycle(t *testing.T) {
	c := newTestCompleter(t)

	first, ok := c.Complete("ec", 0)
	require.True(t, ok)
	assert.Equal(t, "echo", first)

	second, ok := c.Complete("ec", 1)
	require.True(t, ok)
	assert.Equal(t, "echo.txt", second)

	_, ok = c.Complete("ec", 2)
	assert.False(t, ok)

	// Same buffer, restarted cycle: identical candidates.
	again, ok := c.Complete("ec", 0)
	require.True(t, ok)
	assert.Equal(t, first, again)
}

func TestCdFragmentCompletion(t *testing.T) {
	c := newTestCompleter(t)

	// Partial directory name resolves against the current directory.
	assert.Equal(t, []string{"docs/"}, c.Candidates("cd do"))

	// Trailing separator lists the directory itself.
	assert.Equal(t, []string{"docs/guide.md", "docs/notes/"}, c.Candidates("cd docs/"))

	// Partial name inside a directory.
	assert.Equal(t, []string{"docs/notes/"}, c.Candidates("cd docs/no"))
}

func TestCdAbsoluteAndParentNavigation(t *testing.T) {
	c := newTestCompleter(t)

	assert.Equal(t, []string{"/usr/share/"}, c.Candidates("cd /usr/sh"))

	// ".." walks up before listing; candidates are rooted at the resolved
	// directory, not the typed fragment.
	assert.Equal(t, []string{"docs/guide.md", "docs/notes/"},
		c.Candidates("cd docs/notes/../"))
}

func TestCdFallsBackThroughParents(t *testing.T) {
	c := newTestCompleter(t)

	// "docs/gu" is not a directory; its parent docs is.
	assert.Equal(t, []string{"docs/guide.md"}, c.Candidates("cd docs/gu"))

	// Neither "bogus/deep" nor "bogus" exists: fall back to the current
	// directory and match the final component there.
	assert.Equal(t, []string{"main.go"}, c.Candidates("cd bogus/deep/ma"))
}

func TestOtherCommandsCompleteAgainstCurrentDirectory(t *testing.T) {
	c := newTestCompleter(t)

	assert.Equal(t, []string{"main.go"}, c.Candidates("cat ma"))
	assert.Equal(t, []string{"docs/"}, c.Candidates("vim do"))

	// Only the final path component is matched for non-cd commands too.
	assert.Equal(t, []string{"main.go"}, c.Candidates("cat sub/ma"))
}
