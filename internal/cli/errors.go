package cli

import (
	"errors"

	"github.com/anyreduce/reduce/reduce"
)

// ErrInterrupted is returned when the run was cancelled by a signal or by
// the user aborting a --step prompt.
var ErrInterrupted = errors.New("interrupted")

const (
	exitSuccess     = 0
	exitInvalid     = 1
	exitInterrupted = 2
	exitOtherError  = 3
)

// ExitCode maps an error returned by Command.Exec to a process exit code:
// 0 success, 1 invalid initial input, 2 interrupted, 3 anything else
// (adapter or config errors).
func ExitCode(err error) int {
	if err == nil {
		return exitSuccess
	}

	switch {
	case errors.Is(err, reduce.ErrInvalidInitial):
		return exitInvalid
	case errors.Is(err, ErrInterrupted):
		return exitInterrupted
	default:
		return exitOtherError
	}
}
