package cliutil

import (
	"os"

	"github.com/rs/zerolog"
)

// Fail logs err at error level and exits the process with status 1.
func Fail(logger zerolog.Logger, action string, err error) {
	logger.Error().Err(err).Msg(action)
	os.Exit(1)
}

// FailString logs a plain message and exits the process with status 1,
// for argument-validation failures that aren't wrapped errors.
func FailString(logger zerolog.Logger, msg string) {
	logger.Error().Msg(msg)
	os.Exit(1)
}
