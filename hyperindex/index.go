// SPDX-License-Identifier: MIT

package hyperindex

import (
	"context"
	"sync"

	"github.com/katalvlaran/hyperbase/attribute"
	"github.com/katalvlaran/hyperbase/element"
	"github.com/katalvlaran/hyperbase/herr"
	"github.com/katalvlaran/hyperbase/kvbackend"
	"github.com/katalvlaran/hyperbase/permutation"
	"github.com/katalvlaran/hyperbase/storekey"
)

// Index is the permutation-based secondary index over one backend
// namespace. Its live counters mirror the backend's actual content and
// are rehydrated by a single scan at construction time; every Add/
// Remove keeps them in lockstep under mu.
type Index struct {
	backend kvbackend.Backend
	attrs   *attribute.Store

	mu          sync.RWMutex
	symbolCount int64
	edgeCount   int64
	totalDegree int64
}

// New returns an Index over b, rehydrating its live counters from b's
// current content.
func New(ctx context.Context, b kvbackend.Backend) (*Index, error) {
	idx := &Index{backend: b, attrs: attribute.New(b)}
	entries, err := b.Scan(ctx, storekey.AllPrefix(), 0)
	if err != nil {
		return nil, herr.Wrap("hyperindex.New", herr.ErrBackend, err)
	}
	for _, e := range entries {
		el, err := element.Parse(string(e.Key[1:]))
		if err != nil {
			continue
		}
		rec, err := attribute.Decode(e.Value)
		if err != nil {
			continue
		}
		if element.IsAtom(el) {
			idx.symbolCount++
		} else {
			idx.edgeCount++
		}
		idx.totalDegree += rec.Degree()
	}
	return idx, nil
}

// dedupDirectChildren returns edge's children with duplicates (by
// canonical rendering) collapsed to their first occurrence. Degree
// counts distinct edges per child, not per occurrence (spec.md §4.7),
// so a child repeated within one edge must only be touched once here.
func dedupDirectChildren(edge element.Edge) []element.Element {
	seen := make(map[string]bool, len(edge))
	out := make([]element.Element, 0, len(edge))
	for _, c := range edge {
		r := element.Render(c)
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, c)
	}
	return out
}

func identityPermKey(edge element.Edge) ([]byte, error) {
	return storekey.PermKey([]element.Element(edge), 0, len(edge))
}

// Exists reports whether edge's permutation index entries are present,
// checked via the k=0 (identity) witness row (spec.md §4.6).
func (idx *Index) Exists(ctx context.Context, edge element.Edge) (bool, error) {
	if len(edge) < 2 {
		return false, herr.Wrap("hyperindex.Exists", ErrBadEdge, nil)
	}
	key, err := identityPermKey(edge)
	if err != nil {
		return false, herr.Wrap("hyperindex.Exists", herr.ErrOutOfRange, err)
	}
	_, err = idx.backend.Get(ctx, key)
	if err == kvbackend.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, herr.Wrap("hyperindex.Exists", herr.ErrBackend, err)
	}
	return true, nil
}

type childUpdate struct {
	elem  element.Element
	found bool
	rec   attribute.Record
}

// Add inserts edge's n! permutation witness rows and increments the
// degree of each of its distinct direct children. A no-op if edge
// already exists (I4).
func (idx *Index) Add(ctx context.Context, edge element.Edge) error {
	if len(edge) < 2 {
		return herr.Wrap("hyperindex.Add", ErrBadEdge, nil)
	}

	exists, err := idx.Exists(ctx, edge)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	arity := len(edge)
	children := dedupDirectChildren(edge)

	// A nested edge's own children must accrue degree from it too
	// (spec.md §4.7), so materialise nested edges through the same Add
	// path before processing this edge's own direct children. I4's
	// exists-gate makes this a no-op for a nested edge that is already
	// indexed, so no double counting occurs across repeated references.
	for _, c := range children {
		if ce, ok := c.(element.Edge); ok {
			if err := idx.Add(ctx, ce); err != nil {
				return err
			}
		}
	}

	edgeFound, err := idx.attrs.Exists(ctx, edge)
	if err != nil {
		return herr.Wrap("hyperindex.Add", herr.ErrBackend, err)
	}
	edgeRec, err := idx.attrs.Load(ctx, edge)
	if err != nil {
		return herr.Wrap("hyperindex.Add", herr.ErrBackend, err)
	}

	updates := make([]childUpdate, 0, len(children))
	for _, c := range children {
		found, err := idx.attrs.Exists(ctx, c)
		if err != nil {
			return herr.Wrap("hyperindex.Add", herr.ErrBackend, err)
		}
		rec, err := idx.attrs.Load(ctx, c)
		if err != nil {
			return herr.Wrap("hyperindex.Add", herr.ErrBackend, err)
		}
		rec.Inc(attribute.DegreeField)
		updates = append(updates, childUpdate{elem: c, found: found, rec: rec})
	}

	total, err := permutation.Factorial(arity)
	if err != nil {
		return herr.Wrap("hyperindex.Add", herr.ErrOutOfRange, err)
	}
	permKeys := make([][]byte, 0, total)
	for k := 0; k < int(total); k++ {
		rotated, err := permutation.Permutate([]element.Element(edge), k)
		if err != nil {
			return herr.Wrap("hyperindex.Add", herr.ErrOutOfRange, err)
		}
		key, err := storekey.PermKey(rotated, k, arity)
		if err != nil {
			return herr.Wrap("hyperindex.Add", herr.ErrOutOfRange, err)
		}
		permKeys = append(permKeys, key)
	}

	err = idx.backend.Batch(ctx, func(w kvbackend.Writer) error {
		for _, key := range permKeys {
			if err := w.Put(key, []byte{}); err != nil {
				return err
			}
		}
		if !edgeFound {
			if err := w.Put(storekey.VertexKey(edge), attribute.Encode(edgeRec)); err != nil {
				return err
			}
		}
		for _, u := range updates {
			if err := w.Put(storekey.VertexKey(u.elem), attribute.Encode(u.rec)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return herr.Wrap("hyperindex.Add", herr.ErrBackend, err)
	}

	idx.mu.Lock()
	if !edgeFound {
		idx.edgeCount++
	}
	for _, u := range updates {
		if !u.found {
			if element.IsAtom(u.elem) {
				idx.symbolCount++
			} else {
				idx.edgeCount++
			}
		}
	}
	idx.totalDegree += int64(len(updates))
	idx.mu.Unlock()

	return nil
}

// Remove deletes edge's n! permutation witness rows and decrements the
// degree of each distinct direct child, garbage-collecting any record
// (child or the edge itself) that reaches degree 0 with no other
// attribute set (I3). A no-op if edge does not exist (I4).
func (idx *Index) Remove(ctx context.Context, edge element.Edge) error {
	if len(edge) < 2 {
		return herr.Wrap("hyperindex.Remove", ErrBadEdge, nil)
	}

	exists, err := idx.Exists(ctx, edge)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	arity := len(edge)
	children := dedupDirectChildren(edge)

	updates := make([]childUpdate, 0, len(children))
	for _, c := range children {
		rec, err := idx.attrs.Load(ctx, c)
		if err != nil {
			return herr.Wrap("hyperindex.Remove", herr.ErrBackend, err)
		}
		rec.Dec(attribute.DegreeField)
		updates = append(updates, childUpdate{elem: c, rec: rec})
	}

	edgeRec, err := idx.attrs.Load(ctx, edge)
	if err != nil {
		return herr.Wrap("hyperindex.Remove", herr.ErrBackend, err)
	}
	edgeEmpty := edgeRec.IsEmpty()

	total, err := permutation.Factorial(arity)
	if err != nil {
		return herr.Wrap("hyperindex.Remove", herr.ErrOutOfRange, err)
	}
	permKeys := make([][]byte, 0, total)
	for k := 0; k < int(total); k++ {
		rotated, err := permutation.Permutate([]element.Element(edge), k)
		if err != nil {
			return herr.Wrap("hyperindex.Remove", herr.ErrOutOfRange, err)
		}
		key, err := storekey.PermKey(rotated, k, arity)
		if err != nil {
			return herr.Wrap("hyperindex.Remove", herr.ErrOutOfRange, err)
		}
		permKeys = append(permKeys, key)
	}

	err = idx.backend.Batch(ctx, func(w kvbackend.Writer) error {
		for _, key := range permKeys {
			if err := w.Delete(key); err != nil {
				return err
			}
		}
		for _, u := range updates {
			if u.rec.IsEmpty() {
				if err := w.Delete(storekey.VertexKey(u.elem)); err != nil {
					return err
				}
			} else if err := w.Put(storekey.VertexKey(u.elem), attribute.Encode(u.rec)); err != nil {
				return err
			}
		}
		if edgeEmpty {
			if err := w.Delete(storekey.VertexKey(edge)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return herr.Wrap("hyperindex.Remove", herr.ErrBackend, err)
	}

	idx.mu.Lock()
	// edge's own permutation rows are deleted unconditionally above, so its
	// existence (I1) ends here regardless of whether its record survives
	// because some other existing edge still references it as a nested
	// child (edgeEmpty only gates whether that surviving record is kept,
	// not whether edge itself still counts as an edge).
	idx.edgeCount--
	// A nested edge child is counted and uncounted only by Add/Remove
	// calls on that edge itself, so dropping its record here leaves
	// edgeCount alone.
	for _, u := range updates {
		if u.rec.IsEmpty() && element.IsAtom(u.elem) {
			idx.symbolCount--
		}
	}
	idx.totalDegree -= int64(len(updates))
	idx.mu.Unlock()

	return nil
}

// Destroy wipes every key in the index's namespace and resets counters.
func (idx *Index) Destroy(ctx context.Context) error {
	if err := idx.backend.Destroy(ctx); err != nil {
		return herr.Wrap("hyperindex.Destroy", herr.ErrBackend, err)
	}
	idx.mu.Lock()
	idx.symbolCount, idx.edgeCount, idx.totalDegree = 0, 0, 0
	idx.mu.Unlock()
	return nil
}

// SymbolCount returns the number of distinct atoms currently materialised.
func (idx *Index) SymbolCount() int64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.symbolCount
}

// EdgeCount returns the number of distinct edges currently materialised
// (including nested edges referenced by value, per spec.md §4.6).
func (idx *Index) EdgeCount() int64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.edgeCount
}

// TotalDegree returns the sum of d over every materialised element.
func (idx *Index) TotalDegree() int64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.totalDegree
}

// Degree returns e's degree (0 if e has no record).
func (idx *Index) Degree(ctx context.Context, e element.Element) (int64, error) {
	return idx.attrs.Degree(ctx, e)
}

// Attributes exposes the attribute.Store backing this index, for the
// hypergraph facade's get/set attribute surface.
func (idx *Index) Attributes() *attribute.Store {
	return idx.attrs
}
