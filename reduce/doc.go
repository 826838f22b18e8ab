// Package reduce implements a generic input reducer: given an initial byte
// string and an external interestingness predicate, it searches for a
// smaller byte string the predicate still accepts.
//
// The predicate is supplied by the caller as a plain func([]byte) bool. It
// is assumed deterministic and total, but not assumed monotone — a string
// being accepted does not imply any of its substrings are. Everything that
// spawns child processes, applies timeouts, or writes results to disk lives
// outside this package (see internal/predicate and cmd/reduce).
package reduce
