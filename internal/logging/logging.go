// Package logging configures the process-wide zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the logger.
type Options struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Unknown or empty values fall back to info.
	Level string

	// Format is "json" or "console".
	Format string

	// File, when non-empty, appends log output to this path in addition to
	// Output. The original tool kept a shipment_manager.log next to the
	// database; this preserves that.
	File string

	// Output defaults to stderr.
	Output io.Writer
}

// New builds a zerolog.Logger from Options. The returned closer owns the log
// file handle, if one was opened; call it on shutdown.
func New(opts Options) (zerolog.Logger, func() error, error) {
	output := opts.Output
	if output == nil {
		output = os.Stderr
	}
	if opts.Format == "console" {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: "15:04:05"}
	}

	closer := func() error { return nil }
	writers := []io.Writer{output}
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, f)
		closer = f.Close
	}

	zerolog.TimeFieldFormat = time.RFC3339

	log := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Logger().
		Level(ParseLevel(opts.Level))

	return log, closer, nil
}

// ParseLevel maps a level name onto a zerolog level, defaulting to info.
func ParseLevel(value string) zerolog.Level {
	name := strings.ToLower(strings.TrimSpace(value))
	if name == "" {
		return zerolog.InfoLevel
	}
	if lvl, err := zerolog.ParseLevel(name); err == nil {
		return lvl
	}
	return zerolog.InfoLevel
}
