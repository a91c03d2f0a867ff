// SPDX-License-Identifier: MIT
//
// Package hyperindex implements the permutation-based secondary index
// of spec.md §4.6: add/remove/exists, pattern and star queries, root and
// symbol search, full enumeration, and the live symbol/edge/degree
// counters. It is the one package that understands how storekey's p-key
// rows relate to element.Edge values.
//
// Query strategy. Every read query (Pattern2Edges, Star,
// EdgesWithSymbols) reduces to: build a byte prefix from whatever
// concrete values are already known, in their original relative order;
// range-scan p-keys under that prefix; and for each hit, decode its
// k_tag, invert the rotation with permutation.Permutate over identity
// positions to recover the edge's children in their true original
// order, then verify the exact criterion against that reconstruction.
// Because every edge is witnessed by all n! rotations, the relative
// order of any subset of concrete positions is guaranteed to appear as
// some rotation's leading tokens — so a single prefix scan followed by
// reconstruct-and-verify is enough for every query shape, without a
// second index and without capping arity.
package hyperindex
