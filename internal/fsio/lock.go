// Package fsio provides the durability and locking primitives the reduce
// CLI wraps around the core engine: serializing concurrent runs against
// the same input file, and persisting the best candidate as it shrinks.
// The core engine itself never touches a filesystem.
package fsio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
	"time"

	"github.com/natefinch/atomic"
)

// DefaultLockTimeout is the timeout used by AcquireLock.
const DefaultLockTimeout = 5 * time.Second

var (
	// ErrLockTimeout is returned when a lock could not be acquired before
	// the timeout elapsed.
	ErrLockTimeout = errors.New("lock timeout")

	// ErrLockFileOpen is returned when the sidecar lock file could not be
	// opened or created.
	ErrLockFileOpen = errors.New("failed to open lock file")
)

const lockFilePerm = 0o644

// RunLock is an advisory exclusive lock held against a sidecar
// "<path>.lock" file, used to serialize two reduce invocations against the
// same input file so they don't race on <inputfile>.reduced.
type RunLock struct {
	path string
	file *os.File
}

// AcquireLock tries to acquire an exclusive lock on path with the default
// timeout.
func AcquireLock(path string) (*RunLock, error) {
	return AcquireLockWithTimeout(path, DefaultLockTimeout)
}

// AcquireLockWithTimeout tries to acquire an exclusive lock on path,
// retrying until timeout elapses. The lock is taken on a separate ".lock"
// file to avoid interfering with reads of path itself.
func AcquireLockWithTimeout(path string, timeout time.Duration) (*RunLock, error) {
	lockPath := path + ".lock"

	file, openErr := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, lockFilePerm) //nolint:gosec // path is from caller
	if openErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrLockFileOpen, openErr)
	}

	deadline := time.Now().Add(timeout)

	const retryInterval = 10 * time.Millisecond

	for {
		flockErr := syscall.Flock(int(file.Fd()), syscall.LOCK_EX|syscall.LOCK_NB)
		if flockErr == nil {
			return &RunLock{path: lockPath, file: file}, nil
		}

		if time.Now().After(deadline) {
			_ = file.Close()

			return nil, fmt.Errorf("%w: %s", ErrLockTimeout, path)
		}

		time.Sleep(retryInterval)
	}
}

// Release releases the lock and closes the sidecar file.
func (l *RunLock) Release() {
	if l.file != nil {
		_ = syscall.Flock(int(l.file.Fd()), syscall.LOCK_UN)
		_ = l.file.Close()
	}
}

// WriteAtomic persists r to path without ever leaving a reader with a
// half-written file: it writes to a temp file in the same directory and
// renames it over path. Used to land every accepted candidate at
// <inputfile>.reduced while a RunLock on the same path is held, and for
// the final write once the engine settles.
func WriteAtomic(path string, r io.Reader) error {
	return atomic.WriteFile(path, r)
}
