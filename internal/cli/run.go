package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// Run is the main entry point: parses the single "reduce" command's flags
// and runs it to completion, or until a signal arrives. Returns the
// process exit code. sigCh can be nil if signal handling is not needed
// (e.g. in tests).
func Run(out, errOut io.Writer, args []string, workDir string, sigCh <-chan os.Signal) int {
	if len(args) == 0 {
		fprintln(errOut, "error: no arguments given")
		fprintln(errOut, usageLine)

		return exitOtherError
	}

	cmd := ReduceCmd(workDir)
	cmdIO := NewIO(out, errOut)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan int, 1)

	go func() {
		done <- cmd.Run(ctx, cmdIO, args)
	}()

	select {
	case exitCode := <-done:
		return exitCode
	case <-sigCh:
		fprintln(errOut, "shutting down with 5s timeout...")
		cancel()
	}

	select {
	case <-done:
		return exitInterrupted
	case <-time.After(5 * time.Second):
		fprintln(errOut, "graceful shutdown timed out, forced exit")

		return exitInterrupted
	case <-sigCh:
		fprintln(errOut, "graceful shutdown interrupted, forced exit")

		return exitInterrupted
	}
}

const usageLine = "Usage: reduce [flags] <inputfile> -- <test-command> [args...]"

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}
