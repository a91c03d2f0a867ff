// SPDX-License-Identifier: MIT
//
// Package hyperbase provides a persistent store for directed hyperedges
// over atoms and nested edges, backed by an ordered key-value engine.
//
// Construct a store with config and hypergraph:
//
//	hg, err := hypergraph.Open(config.Config{Backend: "badger", Hg: "/var/lib/hg"})
//
// hypergraph.HyperGraph is the public facade; hyperindex implements the
// permutation-based secondary index that backs its pattern, star and
// symbol queries; element and permutation implement the value model and
// the rotation scheme the index is built on; kvbackend and attribute
// are the storage layer beneath both.
package hyperbase
