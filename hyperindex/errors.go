// SPDX-License-Identifier: MIT

package hyperindex

import "errors"

var (
	// ErrBadEdge indicates an edge passed to Add/Remove/Exists has fewer
	// than two children.
	ErrBadEdge = errors.New("hyperindex: edge must have arity >= 2")
	// ErrBadPattern indicates an empty pattern was passed to
	// Pattern2Edges: a zero-length tuple can never describe an edge
	// (minimum arity 2), unlike an all-wildcard pattern of length >= 1,
	// which is legal.
	ErrBadPattern = errors.New("hyperindex: malformed pattern")
)
