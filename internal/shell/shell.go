// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package shell drives the rigsh read-eval-print loop.
package shell

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/jeranaias/rigsh/internal/builtin"
	"github.com/jeranaias/rigsh/internal/complete"
	"github.com/jeranaias/rigsh/internal/config"
	"github.com/jeranaias/rigsh/internal/lookup"
)

// Prompt is printed before every read.
const Prompt = "$ "

// =============================================================================
// SHELL
// =============================================================================

// Shell owns the builtin registry, PATH resolver, and completer, and runs
// the dispatch loop over them. A single control flow handles prompting,
// tokenizing, and dispatch; external commands are waited on synchronously.
type Shell struct {
	cfg       *config.Config
	in        io.Reader
	out       io.Writer
	registry  *builtin.Registry
	resolver  *lookup.Resolver
	completer *complete.Completer
	logger    *log.Logger
	logFile   io.Closer
}

// New constructs a shell reading from in and writing to out. Directory
// listings and PATH lookups go through fsys.
func New(cfg *config.Config, in io.Reader, out io.Writer, fsys afero.Fs) *Shell {
	resolver := lookup.New(fsys)
	registry := builtin.NewRegistry(out, resolver)
	logger, logFile := newLogger(cfg)

	return &Shell{
		cfg:       cfg,
		in:        in,
		out:       out,
		registry:  registry,
		resolver:  resolver,
		completer: complete.New(fsys, registry.Names()),
		logger:    logger,
		logFile:   logFile,
	}
}

// newLogger builds the debug logger. Without a configured debug_log the
// logger writes to io.Discard; tracing never reaches the user's terminal.
func newLogger(cfg *config.Config) (*log.Logger, io.Closer) {
	if cfg.DebugLog == "" {
		return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel}), nil
	}

	f, err := os.OpenFile(cfg.DebugLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel}), nil
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "rigsh",
	})
	return logger, f
}

// Run executes the REPL until exit or end of input and returns the process
// exit code.
func (s *Shell) Run() int {
	defer s.closeLog()

	if s.interactive() {
		return s.runInteractive()
	}
	return s.runScanner()
}

func (s *Shell) closeLog() {
	if s.logFile != nil {
		s.logFile.Close()
	}
}

// interactive reports whether the input stream is a terminal.
func (s *Shell) interactive() bool {
	f, ok := s.in.(*os.File)
	return ok && isTerminal(f)
}

// =============================================================================
// DISPATCH
// =============================================================================

// ProcessInput tokenizes one line and routes it. The returned error is
// control flow only: a *builtin.ExitError when the exit builtin ran.
// Everything user-visible is written to the shell's output.
func (s *Shell) ProcessInput(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}

	name, args := tokens[0], tokens[1:]

	if cmd, ok := s.registry.Get(name); ok {
		s.logger.Debug("dispatching builtin", "cmd", name, "args", len(args))
		return cmd.Execute(args)
	}

	if path, ok := s.resolver.Resolve(name); ok {
		s.logger.Debug("dispatching external", "cmd", name, "path", path)
		s.runExternal(name, path, args)
		return nil
	}

	s.logger.Debug("command not found", "cmd", name)
	fmt.Fprintf(s.out, "%s: command not found\n", name)
	return nil
}

// runExternal launches the resolved executable and blocks until it
// finishes, capturing its output streams separately. A zero exit prints
// the captured stdout verbatim; a non-zero exit prints the captured stderr
// verbatim and drops stdout.
func (s *Shell) runExternal(name, path string, args []string) {
	cmd := exec.Command(path, args...)
	// The child sees the typed name, not the resolved path, as argv[0].
	cmd.Args = append([]string{name}, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		s.logger.Debug("external command finished", "cmd", name, "exit", 0)
		fmt.Fprint(s.out, stdout.String())
	case errors.As(err, &exitErr):
		s.logger.Debug("external command failed", "cmd", name, "exit", exitErr.ExitCode())
		fmt.Fprint(s.out, stderr.String())
	case errors.Is(err, fs.ErrNotExist) || errors.Is(err, exec.ErrNotFound):
		// The binary vanished between resolution and launch.
		fmt.Fprintf(s.out, "%s: command not found\n", name)
	default:
		fmt.Fprintf(s.out, "Error executing %s: %v\n", name, err)
	}
}
