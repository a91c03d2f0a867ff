// SPDX-License-Identifier: MIT
//
// Package hypergraph is the public facade of a persistent hyperedge
// store: one HyperGraph per KV namespace, composing kvbackend,
// attribute and hyperindex behind the surface of spec.md §6.
package hypergraph
