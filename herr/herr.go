// SPDX-License-Identifier: MIT
//
// Package herr defines the four sentinel error classes shared across
// hyperbase's packages, per the error-handling design of SPEC_FULL.md §7.
//
// Policy (same discipline the rest of the module follows):
//   - Only sentinel variables are exported; callers branch with errors.Is.
//   - Sentinels are never wrapped at definition site; each package wraps
//     its own more specific error into one of these four with %w at the
//     boundary it crosses (see Wrap).
package herr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotWellFormed marks a malformed edge or element: arity < 2, a
	// forbidden character in an atom, or non-canonical rendering where
	// one is required.
	ErrNotWellFormed = errors.New("hyperbase: not well-formed")

	// ErrBackend marks a failure surfaced by the underlying KV engine
	// (I/O, corruption). Propagated unchanged, never retried by the core.
	ErrBackend = errors.New("hyperbase: backend error")

	// ErrClosed marks an operation attempted on a closed or destroyed
	// HyperGraph handle.
	ErrClosed = errors.New("hyperbase: handle closed")

	// ErrOutOfRange marks an out-of-domain permutation index (k >= n!)
	// or an otherwise out-of-bounds numeric argument.
	ErrOutOfRange = errors.New("hyperbase: out of range")
)

// Wrap attaches method context to a sentinel, e.g.
// Wrap("hyperindex.Add", ErrNotWellFormed, err) -> "hyperindex.Add: hyperbase: not well-formed: <err>".
// The original sentinel remains matchable via errors.Is.
func Wrap(method string, sentinel, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", method, sentinel)
	}
	return fmt.Errorf("%s: %w: %v", method, sentinel, cause)
}
