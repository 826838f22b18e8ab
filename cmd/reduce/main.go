// Package main provides reduce, a generic input reducer: it shrinks an
// input file while a user-supplied test command keeps accepting it (exits
// with status 0).
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/anyreduce/reduce/internal/cli"
)

func main() {
	workDir, err := os.Getwd()
	if err != nil {
		os.Exit(3)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	exitCode := cli.Run(os.Stdout, os.Stderr, os.Args[1:], workDir, sigCh)

	os.Exit(exitCode)
}
