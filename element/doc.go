// SPDX-License-Identifier: MIT
//
// Package element defines the recursive value type at the bottom of the
// hypergraph store: an Element is either an Atom (a bare string) or an
// Edge (an ordered tuple of two or more child Elements).
//
// Elements are values, not graph nodes: equality is structural and the
// canonical textual rendering (Render) doubles as the element's hash/map
// key everywhere else in the module. There is no identity, and therefore
// no cycle to break — an Edge referenced as a child is physically inlined
// in its parent's rendering (see SPEC_FULL.md §9).
//
// Canonical form:
//
//	Atom  -> the atom's own string.
//	Edge  -> "(e1 e2 … en)", children rendered recursively and separated
//	         by exactly one space.
//
// Parse is strict: it rejects leading/trailing/doubled whitespace inside
// an edge body and unbalanced parentheses, so that Render(Parse(s)) == s
// holds for every canonical s (spec.md §4.1, §8).
package element
