// SPDX-License-Identifier: MIT
//
// Package config builds the kvbackend.Backend a hypergraph.HyperGraph
// runs on from a small, explicit set of construction fields (spec.md
// §6): which engine to use, and where its data lives.
package config
