// SPDX-License-Identifier: MIT

package attribute

import "errors"

var (
	// ErrMalformedRecord indicates a stored record could not be decoded.
	ErrMalformedRecord = errors.New("attribute: malformed record")
	// ErrWrongType indicates an attribute was fetched with the wrong
	// accessor for its stored kind (e.g. GetInt on an "s" field).
	ErrWrongType = errors.New("attribute: wrong attribute type")
)
