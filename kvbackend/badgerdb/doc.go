// SPDX-License-Identifier: MIT
//
// Package badgerdb implements kvbackend.Backend over
// github.com/dgraph-io/badger/v4, the module's persistent ordered-KV
// engine (spec.md §4.4). Badger's own key ordering and iterator
// prefix-seeking are exactly what storekey's range-scan design assumes,
// so this adapter is a thin translation layer: no caching, no retries,
// no schema beyond what storekey already encodes.
package badgerdb
