// rigsh - a small interactive shell with readline-style editing.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/jeranaias/rigsh/internal/config"
	"github.com/jeranaias/rigsh/internal/shell"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// A broken config file is worth a warning but never blocks the
		// shell; Load already fell back to defaults.
		fmt.Fprintf(os.Stderr, "rigsh: %v\n", err)
	}

	sh := shell.New(cfg, os.Stdin, os.Stdout, afero.NewOsFs())
	os.Exit(sh.Run())
}
