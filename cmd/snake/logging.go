package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds the process logger writing to w at the given level.
func newLogger(w io.Writer, prefix, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// openLogFile returns the play log destination. The terminal belongs to
// the game, so without a file logs are dropped.
func openLogFile(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
