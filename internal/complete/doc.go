// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package complete generates tab-completion candidates for the line editor.
//
// The engine follows the readline calling convention: the front end asks
// for candidate 0, 1, 2, ... for a fixed input buffer, and the candidate
// list is recomputed only when the cycle restarts at state 0. Candidates
// come from the builtin name set and from directory listings; the cd
// command gets path-aware completion including ".." navigation.
//
// Filesystem access goes through afero.Fs so the engine runs unmodified on
// an in-memory filesystem in tests.
package complete
