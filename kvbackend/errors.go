// SPDX-License-Identifier: MIT

package kvbackend

import "errors"

var (
	// ErrNotFound indicates Get found no record under the given key.
	ErrNotFound = errors.New("kvbackend: key not found")
	// ErrClosed indicates an operation was attempted on a closed backend.
	ErrClosed = errors.New("kvbackend: backend closed")
)
