// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"unicode"

	"github.com/peterh/liner"

	"github.com/jeranaias/rigsh/internal/builtin"
)

// =============================================================================
// INTERACTIVE LOOP (liner front end)
// =============================================================================

// runInteractive reads lines through liner: history navigation with arrow
// keys, Ctrl-C back to a fresh prompt, Ctrl-D for a clean exit.
func (s *Shell) runInteractive() int {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetTabCompletionStyle(liner.TabCircular)
	line.SetWordCompleter(s.completeWord)

	s.loadHistory(line)
	defer s.saveHistory(line)

	for {
		input, err := line.Prompt(Prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				// Interrupt at the prompt: blank line, re-prompt.
				fmt.Fprintln(s.out)
				continue
			}
			// EOF or an unrecoverable read error ends the session.
			fmt.Fprintln(s.out)
			return 0
		}

		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}

		if err := s.ProcessInput(input); err != nil {
			var exitErr *builtin.ExitError
			if errors.As(err, &exitErr) {
				return exitErr.Code
			}
		}
	}
}

// completeWord adapts the stateful completion engine to liner's word
// completer: candidates replace only the token under the cursor.
func (s *Shell) completeWord(line string, pos int) (string, []string, string) {
	buf := line[:pos]
	candidates := s.completer.Candidates(buf)
	return buf[:tokenStart(buf)], candidates, line[pos:]
}

// tokenStart returns the index where the token being completed begins:
// just past the last whitespace in buf.
func tokenStart(buf string) int {
	if i := strings.LastIndexFunc(buf, unicode.IsSpace); i >= 0 {
		return i + 1
	}
	return 0
}

// =============================================================================
// NON-TERMINAL LOOP
// =============================================================================

// runScanner handles piped or redirected input with the same prompt and
// dispatch as the interactive loop but no line editing. Interrupts print a
// blank line instead of killing the process.
func (s *Shell) runScanner() int {
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	defer signal.Stop(sigc)

	return s.scanLoop(sigc)
}

// scanLoop is the scanner-mode dispatch loop. Lines are read on a
// separate goroutine, but both interrupts and input are serviced here so
// the shell's output has a single writer.
func (s *Shell) scanLoop(sigc <-chan os.Signal) int {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		fmt.Fprint(s.out, Prompt)

		select {
		case <-sigc:
			// Interrupt at the prompt: blank line, re-prompt.
			fmt.Fprintln(s.out)
		case line, ok := <-lines:
			if !ok {
				return 0
			}
			if err := s.ProcessInput(line); err != nil {
				var exitErr *builtin.ExitError
				if errors.As(err, &exitErr) {
					return exitErr.Code
				}
			}
		}
	}
}
