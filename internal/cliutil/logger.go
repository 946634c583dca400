// Package cliutil holds the small pieces of command-line plumbing shared
// across cmd/qbip38's subcommands: structured logging and error exit
// codes.
package cliutil

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds a console-formatted zerolog.Logger writing to out, at
// the given level ("debug", "info", "warn", "error"; anything else falls
// back to info).
func NewLogger(out io.Writer, level string) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}
	console := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	logger := zerolog.New(console).With().Timestamp().Logger()

	switch level {
	case "debug":
		logger = logger.Level(zerolog.DebugLevel)
	case "warn":
		logger = logger.Level(zerolog.WarnLevel)
	case "error":
		logger = logger.Level(zerolog.ErrorLevel)
	default:
		logger = logger.Level(zerolog.InfoLevel)
	}
	return logger
}
