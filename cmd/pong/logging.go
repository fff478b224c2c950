package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// openLogOutput picks where logs go. Frontends that draw into the terminal
// only log to a file, and discard logs when none is given.
func openLogOutput(path string, ownsTerminal bool) (io.Writer, func() error, error) {
	noop := func() error { return nil }

	if path == "" {
		if ownsTerminal {
			return io.Discard, noop, nil
		}
		return os.Stderr, noop, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, noop, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, f.Close, nil
}

// newLogger creates the application logger.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
		Level:           lvl,
	}), nil
}
