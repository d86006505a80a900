package cmd

import (
	"errors"

	"github.com/Alia5/cuamap/remap"
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUnavailable = 2 // input device or virtual keyboard could not be acquired
	ExitKilled      = 3 // kill sequence pressed
)

// ExitCode maps the error returned by a command to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, remap.ErrKillSequence):
		return ExitKilled
	case errors.Is(err, remap.ErrSourceUnavailable), errors.Is(err, remap.ErrSinkCreationFailed):
		return ExitUnavailable
	default:
		return ExitFailure
	}
}
