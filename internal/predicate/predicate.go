// Package predicate adapts an external test command into a
// reduce.PredicateFunc: the engine's only collaborator for "does this
// candidate still reproduce the bug".
package predicate

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/anyreduce/reduce/internal/fsio"
	"github.com/anyreduce/reduce/reduce"
)

// ErrEmptyCommand is returned by New when cfg.Command is empty.
var ErrEmptyCommand = errors.New("predicate: empty command")

// Config describes the external test command a candidate is judged by.
type Config struct {
	// Command is argv for the child process, e.g. []string{"sh", "-c", "..."}.
	Command []string

	// Timeout bounds a single invocation. A candidate that doesn't finish
	// in time is treated as a rejection, never as a crash.
	Timeout time.Duration

	// WorkDir is the directory the child process runs in. Empty means the
	// current process's working directory.
	WorkDir string
}

// New returns a reduce.PredicateFunc that runs cfg.Command once per call,
// feeding the candidate on stdin. On acceptance (exit code 0) it
// atomically persists the candidate to persistPath. The returned function
// is a plain func([]byte) bool — it never panics on its own account, a
// failure to spawn or persist is treated the same as rejection, since the
// engine that calls it never branches on "why a candidate was rejected".
func New(ctx context.Context, cfg Config, persistPath string) (reduce.PredicateFunc, error) {
	if len(cfg.Command) == 0 {
		return nil, ErrEmptyCommand
	}

	return func(candidate []byte) bool {
		if !runsOnce(ctx, cfg, candidate) {
			return false
		}

		if err := fsio.WriteAtomic(persistPath, bytes.NewReader(candidate)); err != nil {
			return false
		}

		return true
	}, nil
}

func runsOnce(ctx context.Context, cfg Config, candidate []byte) bool {
	runCtx := ctx

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc

		runCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, cfg.Command[0], cfg.Command[1:]...) //nolint:gosec // command is operator-supplied
	cmd.Dir = cfg.WorkDir
	cmd.Stdin = bytes.NewReader(candidate)

	var stdout, stderr strings.Builder

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if runErr == nil {
		return true
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		return false
	}

	// Timeout, missing binary, or anything else that isn't a clean
	// nonzero exit: still just a rejection from the engine's point of
	// view.
	return false
}
