// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"bytes"
	"os"

	"github.com/peterh/liner"

	"github.com/jeranaias/rigsh/internal/util"
)

// loadHistory seeds the line editor from the configured history file. A
// missing file is the normal first-run case.
func (s *Shell) loadHistory(line *liner.State) {
	if s.cfg.HistoryFile == "" {
		return
	}

	f, err := os.Open(s.cfg.HistoryFile)
	if err != nil {
		return
	}
	defer f.Close()

	if n, err := line.ReadHistory(f); err == nil {
		s.logger.Debug("history loaded", "entries", n, "file", s.cfg.HistoryFile)
	}
}

// saveHistory writes the session history back to disk, capped at the
// configured limit. The write is atomic so a crash mid-save cannot
// truncate the existing history.
func (s *Shell) saveHistory(line *liner.State) {
	if s.cfg.HistoryFile == "" {
		return
	}

	var buf bytes.Buffer
	if _, err := line.WriteHistory(&buf); err != nil {
		s.logger.Error("failed to serialize history", "err", err)
		return
	}

	data := []byte(util.TailLines(buf.String(), s.cfg.HistoryLimit))
	if err := util.AtomicWriteFile(s.cfg.HistoryFile, data, 0600); err != nil {
		s.logger.Error("failed to save history", "err", err)
	}
}
