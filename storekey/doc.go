// SPDX-License-Identifier: MIT
//
// Package storekey implements the bijective encoding between elements and
// the byte keys used in the backing store (spec.md §4.3). Two key
// families share one ordered namespace, distinguished by a one-byte
// prefix:
//
//	v-keys  "v" || render(element)                               -- attribute records
//	p-keys  "p" || render(perm_k(edge)) || sep || k_tag           -- permutation index rows
//
// sep is '|', one of element's own reserved delimiters, so it can never
// appear inside a render(...) substring — DecodePermKey can therefore
// locate the k_tag unambiguously by splitting on the last '|' in the key.
//
// An edge of arity n is witnessed by exactly n! p-key rows, one per
// k in [0, n!). Existence checks use the k=0 row, which — because
// permutation.Permutate(t, 0) == t — is simply the edge's own canonical
// rendering. Pattern, star, and symbol queries scan by a *value* prefix
// (the rendering of whichever leading elements are already known) and
// ignore k_tag at scan time; hyperindex recovers k from each hit's
// k_tag to reconstruct the edge in original child order before applying
// its own positional verification. This is what lets one key layout
// serve position-insensitive queries (star) and position-sensitive ones
// (pattern2edges) without maintaining two separate indices.
package storekey
