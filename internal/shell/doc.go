// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package shell drives the rigsh read-eval-print loop.
//
// The driver alternates between two states, prompting and dispatching, and
// has no terminal state other than process exit. Each input line is split
// on whitespace (no quoting or escaping, a deliberate simplification) and
// routed to a builtin, a PATH-resolved external executable, or a
// command-not-found message.
//
// Interactive sessions run on a peterh/liner front end with history
// navigation, persistent history, and tab completion; when stdin is not a
// terminal the loop falls back to a plain line scanner with the same
// prompt and dispatch behavior.
package shell
