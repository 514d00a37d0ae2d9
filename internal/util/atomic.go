// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across rigsh.
package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// AtomicWriteFile writes data to path without ever leaving a partially
// written file behind: the data goes to a temp file next to the target,
// is fsynced, and is then renamed into place. The parent directory is
// created if missing.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	dir := filepath.Dir(absPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tempPath, err := writeTemp(dir, data, perm)
	if err != nil {
		return err
	}

	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("replace %s: %w", absPath, err)
	}
	return nil
}

// writeTemp writes data to a fresh temp file in dir, syncs it to disk,
// and applies perm. The temp file must live in dir so the caller's rename
// stays on one filesystem and is atomic.
func writeTemp(dir string, data []byte, perm os.FileMode) (string, error) {
	f, err := os.CreateTemp(dir, ".tmp-")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	name := f.Name()

	discard := func(err error) (string, error) {
		f.Close()
		os.Remove(name)
		return "", err
	}

	if _, err := f.Write(data); err != nil {
		return discard(fmt.Errorf("write %s: %w", name, err))
	}
	if err := f.Sync(); err != nil {
		return discard(fmt.Errorf("sync %s: %w", name, err))
	}
	if err := f.Chmod(perm); err != nil {
		return discard(fmt.Errorf("chmod %s: %w", name, err))
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("close %s: %w", name, err)
	}

	return name, nil
}
