// SPDX-License-Identifier: MIT

package permutation

import "errors"

var (
	// ErrOutOfRange indicates k is outside [0, n!).
	ErrOutOfRange = errors.New("permutation: k out of range")

	// ErrDimensionMismatch indicates mismatched tuple/permutation lengths.
	ErrDimensionMismatch = errors.New("permutation: dimension mismatch")

	// ErrNotAPermutation indicates perm is not a rearrangement of tuple
	// (Rank could not locate one of perm's elements among tuple's).
	ErrNotAPermutation = errors.New("permutation: not a permutation of tuple")

	// ErrFactorialOverflow indicates n! does not fit in a uint64 (n > 20).
	ErrFactorialOverflow = errors.New("permutation: factorial overflow")
)
