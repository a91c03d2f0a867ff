// SPDX-License-Identifier: MIT

package kvbackend

import "context"

// Entry is one key-value pair returned by Scan, in ascending key order.
type Entry struct {
	Key   []byte
	Value []byte
}

// Writer accumulates mutations inside a Batch. Writes are not visible to
// readers until the Batch function returns nil and the batch commits.
type Writer interface {
	Put(key, value []byte) error
	Delete(key []byte) error
}

// Backend is the ordered key-value contract every package above it is
// built on. Keys sort lexicographically by byte value; Scan relies on
// this to turn storekey prefixes into contiguous ranges.
//
//	Get(k)            -- point read, ErrNotFound if absent
//	Put(k, v)          -- point write, creates or overwrites
//	Delete(k)          -- point delete, no error if already absent
//	Scan(prefix, limit) -- all entries with key >= prefix and key having
//	                       prefix as a byte-prefix, in ascending order;
//	                       limit <= 0 means unlimited
//	Batch(fn)          -- fn's writes apply atomically, all-or-nothing
//	Destroy()          -- drops every key in the backend
//	Close()            -- releases underlying resources
type Backend interface {
	Get(ctx context.Context, key []byte) ([]byte, error)
	Put(ctx context.Context, key, value []byte) error
	Delete(ctx context.Context, key []byte) error
	Scan(ctx context.Context, prefix []byte, limit int) ([]Entry, error)
	Batch(ctx context.Context, fn func(w Writer) error) error
	Destroy(ctx context.Context) error
	Close() error
}
