// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for rigsh.
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (RIGSH_*)
//   - ~/.rigsh/config.toml
//   - Built-in defaults
//
// Nothing in the configuration changes the interactive contract of the
// shell: the prompt and builtin output are fixed. Settings cover history
// persistence and debug logging only.
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    // fall back to config.Default()
//	}
package config
