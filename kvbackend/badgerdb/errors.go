// SPDX-License-Identifier: MIT

package badgerdb

import "errors"

// ErrOpen indicates badger.Open failed; the underlying cause is wrapped
// alongside it.
var ErrOpen = errors.New("badgerdb: open failed")
