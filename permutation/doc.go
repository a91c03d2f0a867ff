// SPDX-License-Identifier: MIT
//
// Package permutation implements the deterministic permutation-ranking
// scheme that seeds the hyperedge permutation index (spec.md §4.2).
//
// Permutate treats k as a factorial-base numeral of length n: digit
// d_i = (k / (n-1-i)!) mod (n-i) selects, for position i, the d_i-th
// still-unused element of the original tuple in left-to-right order.
// Rank is its inverse: it recovers k from a permutation. The index
// itself only calls Permutate, both to build rotations and to invert
// one over identity positions.
//
// This ordering is a contract, not an implementation detail: any
// reimplementation must reproduce it bit for bit (spec.md §4.2, §8).
package permutation
