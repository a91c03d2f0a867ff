// SPDX-License-Identifier: MIT
//
// Package kvbackend defines the ordered key-value contract hyperindex and
// attribute are built on (spec.md §4.4). A Backend need only support
// point reads/writes, atomic batches, and prefix-ordered scans: every
// query in this module — exact-edge lookup, pattern matching, star,
// symbol search — reduces to one of those three operations against the
// storekey encoding.
//
// Two engines implement it: kvbackend/badgerdb (persistent, backed by
// github.com/dgraph-io/badger/v4) and kvbackend/memkv (an in-memory,
// dependency-free engine used as the executable spec of the Scan
// snapshot contract and as the default test engine).
package kvbackend
