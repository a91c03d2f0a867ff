// SPDX-License-Identifier: MIT

package element

import "errors"

// Sentinel errors for the element package. Callers branch with errors.Is.
// They are returned as they are: no package further up wraps them in
// herr.ErrNotWellFormed.
var (
	// ErrEmptyAtom indicates an atom token with zero length.
	ErrEmptyAtom = errors.New("element: empty atom")

	// ErrForbiddenChar indicates an atom containing one of the reserved
	// delimiters: space, '(', ')', '|', '\\'.
	ErrForbiddenChar = errors.New("element: forbidden character in atom")

	// ErrArity indicates an edge with fewer than two children.
	ErrArity = errors.New("element: edge arity must be >= 2")

	// ErrMalformed indicates a textual form with leading, trailing, or
	// doubled whitespace, or otherwise not decomposable per the grammar.
	ErrMalformed = errors.New("element: malformed textual form")

	// ErrUnbalancedParens indicates mismatched '(' / ')' in a textual form.
	ErrUnbalancedParens = errors.New("element: unbalanced parentheses")
)
