// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for rigsh.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURE
// =============================================================================

// Config holds the rigsh settings. All fields have working defaults; a
// missing config file is not an error.
type Config struct {
	// HistoryFile is where interactive input history is persisted.
	HistoryFile string `toml:"history_file"`

	// HistoryLimit caps the number of history entries kept on disk.
	HistoryLimit int `toml:"history_limit"`

	// DebugLog, when non-empty, names a file that receives dispatch
	// tracing. Empty disables debug logging entirely.
	DebugLog string `toml:"debug_log"`
}

// DefaultHistoryLimit is used when the config does not set one.
const DefaultHistoryLimit = 1000

// ConfigDir returns the rigsh configuration directory (~/.rigsh).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".rigsh"), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{
		HistoryLimit: DefaultHistoryLimit,
	}
	if dir, err := ConfigDir(); err == nil {
		cfg.HistoryFile = filepath.Join(dir, "history")
	}
	return cfg
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads ~/.rigsh/config.toml if present and applies RIGSH_*
// environment overrides. On a malformed file the defaults are returned
// along with the error so the caller can keep running.
func Load() (*Config, error) {
	dir, err := ConfigDir()
	if err != nil {
		cfg := Default()
		cfg.applyEnv()
		return cfg, nil
	}
	return LoadFrom(filepath.Join(dir, "config.toml"))
}

// LoadFrom reads the given TOML file, falling back to defaults when it does
// not exist. Environment overrides are applied last.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil && !os.IsNotExist(err) {
		cfg = Default()
		cfg.applyEnv()
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv applies RIGSH_* environment variables on top of file values.
// Invalid numeric values are ignored rather than fatal.
func (c *Config) applyEnv() {
	if v := os.Getenv("RIGSH_HISTORY_FILE"); v != "" {
		c.HistoryFile = v
	}
	if v := os.Getenv("RIGSH_HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.HistoryLimit = n
		}
	}
	if v := os.Getenv("RIGSH_DEBUG_LOG"); v != "" {
		c.DebugLog = v
	}
}
