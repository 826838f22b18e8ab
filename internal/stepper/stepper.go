// Package stepper implements the interactive --step debug mode: a thin
// wrapper around the engine's debug-notice callback. It pauses on a
// terminal prompt only when the caller asks via Before; notices are
// forwarded without pausing.
package stepper

import (
	"github.com/peterh/liner"

	"github.com/anyreduce/reduce/reduce"
)

// Stepper holds the terminal prompt state for --step mode and whether a
// prompt ended the run (the user typed "q", hit ^D, or the terminal went
// away).
type Stepper struct {
	line    *liner.State
	seen    map[string]bool
	wrapped func(reduce.Notice)
	aborted bool
}

// New creates a Stepper using a fresh liner.State. Callers must call
// Close when done.
func New(wrapped func(reduce.Notice)) *Stepper {
	return &Stepper{
		line:    liner.NewLiner(),
		seen:    make(map[string]bool),
		wrapped: wrapped,
	}
}

// Close releases the underlying terminal state.
func (s *Stepper) Close() error {
	return s.line.Close()
}

// Aborted reports whether the user ended the run at a prompt.
func (s *Stepper) Aborted() bool {
	return s.aborted
}

// Before blocks on a prompt the first time it is called for a given label
// in this run (subsequent calls with the same label are no-ops). Returns
// false if the user aborted, in which case Aborted reports true for the
// remainder of the run.
func (s *Stepper) Before(label string) bool {
	if s.aborted {
		return false
	}

	if s.seen[label] {
		return true
	}

	s.seen[label] = true

	line, err := s.line.Prompt("reduce [" + label + "]> ")
	if err != nil {
		s.aborted = true

		return false
	}

	if line == "q" {
		s.aborted = true

		return false
	}

	return true
}

// OnNotice forwards n to the wrapped debug callback, if any. Stepper
// itself never inspects notice contents; the only prompts it shows are
// the ones asked for via Before.
func (s *Stepper) OnNotice(n reduce.Notice) {
	if s.wrapped != nil {
		s.wrapped(n)
	}
}
