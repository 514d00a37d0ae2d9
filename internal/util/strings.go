// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import "strings"

// TailLines returns the last limit lines of text. A trailing newline does
// not count as an extra line. limit <= 0 returns text unchanged.
func TailLines(text string, limit int) string {
	if limit <= 0 {
		return text
	}

	trimmed := strings.TrimSuffix(text, "\n")
	if trimmed == "" {
		return text
	}

	lines := strings.Split(trimmed, "\n")
	if len(lines) <= limit {
		return text
	}

	return strings.Join(lines[len(lines)-limit:], "\n") + "\n"
}
