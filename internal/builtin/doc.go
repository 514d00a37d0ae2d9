// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package builtin implements the commands the shell handles itself rather
// than launching an executable: exit, echo, type, pwd, and cd.
//
// # Key Types
//
//   - Command: the execute contract every builtin satisfies
//   - Registry: the fixed name -> Command mapping built at startup
//   - ExitError: carries the requested process exit code up to the driver
//
// Builtins report everything on the writer they were constructed with; the
// only side effects beyond that are the working-directory change made by cd
// and the termination requested by exit.
package builtin
