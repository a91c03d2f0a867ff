// SPDX-License-Identifier: MIT

package storekey

import "errors"

var (
	// ErrBadKey indicates a key could not be decoded (missing prefix,
	// missing separator, or a malformed k_tag).
	ErrBadKey = errors.New("storekey: malformed key")
)
