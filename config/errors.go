// SPDX-License-Identifier: MIT

package config

import "errors"

// ErrUnknownBackend indicates Config.Backend named an engine this
// module does not recognise.
var ErrUnknownBackend = errors.New("config: unknown backend")
