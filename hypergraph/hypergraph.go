// SPDX-License-Identifier: MIT

package hypergraph

import (
	"context"
	"sync"

	"github.com/katalvlaran/hyperbase/config"
	"github.com/katalvlaran/hyperbase/element"
	"github.com/katalvlaran/hyperbase/herr"
	"github.com/katalvlaran/hyperbase/hyperindex"
	"github.com/katalvlaran/hyperbase/kvbackend"
)

// HyperGraph is one isolated namespace over a backend, generalising the
// teacher's in-memory core.Graph to an owned, fallible-to-construct
// resource: backend I/O can fail where an in-process graph cannot.
type HyperGraph struct {
	mu      sync.RWMutex
	backend kvbackend.Backend
	idx     *hyperindex.Index
	closed  bool
}

// Open constructs a HyperGraph over the backend named by cfg, generalising
// the teacher's NewGraph(opts ...GraphOption) constructor to return an
// error since opening a persistent backend is fallible.
func Open(cfg config.Config) (*HyperGraph, error) {
	b, err := config.Open(cfg)
	if err != nil {
		return nil, err
	}
	idx, err := hyperindex.New(context.Background(), b)
	if err != nil {
		return nil, err
	}
	return &HyperGraph{backend: b, idx: idx}, nil
}

// Close releases the underlying backend. Any further call on hg that
// returns an error returns ErrClosed; a repeated Close returns nil, and
// SymbolCount, EdgeCount and TotalDegree do not check for a closed hg.
func (hg *HyperGraph) Close() error {
	hg.mu.Lock()
	defer hg.mu.Unlock()
	if hg.closed {
		return nil
	}
	hg.closed = true
	if err := hg.backend.Close(); err != nil {
		return herr.Wrap("hypergraph.Close", herr.ErrBackend, err)
	}
	return nil
}

func (hg *HyperGraph) checkOpen() error {
	hg.mu.RLock()
	defer hg.mu.RUnlock()
	if hg.closed {
		return herr.Wrap("hypergraph", herr.ErrClosed, nil)
	}
	return nil
}

// Add inserts edge. A no-op if edge already exists.
func (hg *HyperGraph) Add(ctx context.Context, edge element.Edge) error {
	if err := hg.checkOpen(); err != nil {
		return err
	}
	return hg.idx.Add(ctx, edge)
}

// Remove deletes edge. A no-op if edge does not exist.
func (hg *HyperGraph) Remove(ctx context.Context, edge element.Edge) error {
	if err := hg.checkOpen(); err != nil {
		return err
	}
	return hg.idx.Remove(ctx, edge)
}

// Exists reports whether edge is currently materialised.
func (hg *HyperGraph) Exists(ctx context.Context, edge element.Edge) (bool, error) {
	if err := hg.checkOpen(); err != nil {
		return false, err
	}
	return hg.idx.Exists(ctx, edge)
}

// Destroy wipes the namespace, resetting it to empty.
func (hg *HyperGraph) Destroy(ctx context.Context) error {
	if err := hg.checkOpen(); err != nil {
		return err
	}
	return hg.idx.Destroy(ctx)
}

// AddMany applies Add to every edge in order, generalising the teacher's
// BuildGraph(gopts, bopts, cons...) "apply N ops, wrap first error" shape
// from a list of Constructor closures to a list of edges. Stops and
// returns the first error; edges already applied before it remain.
func (hg *HyperGraph) AddMany(ctx context.Context, edges []element.Edge) error {
	if err := hg.checkOpen(); err != nil {
		return err
	}
	for _, e := range edges {
		if err := hg.idx.Add(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

// RemoveMany applies Remove to every edge in order. Stops and returns the
// first error; edges already removed before it remain removed.
func (hg *HyperGraph) RemoveMany(ctx context.Context, edges []element.Edge) error {
	if err := hg.checkOpen(); err != nil {
		return err
	}
	for _, e := range edges {
		if err := hg.idx.Remove(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

// Pattern2Edges returns every edge matching pattern (see hyperindex.Pattern2Edges).
func (hg *HyperGraph) Pattern2Edges(ctx context.Context, pattern hyperindex.Pattern, openEnded bool) (map[string]element.Edge, error) {
	if err := hg.checkOpen(); err != nil {
		return nil, err
	}
	return hg.idx.Pattern2Edges(ctx, pattern, openEnded)
}

// Star returns every edge incident to el, up to limit results (limit <= 0
// means unlimited).
func (hg *HyperGraph) Star(ctx context.Context, el element.Element, limit int) (map[string]element.Edge, error) {
	if err := hg.checkOpen(); err != nil {
		return nil, err
	}
	return hg.idx.Star(ctx, el, limit)
}

// SymbolsWithRoot returns every atom whose root equals root.
func (hg *HyperGraph) SymbolsWithRoot(ctx context.Context, root string) (map[string]element.Atom, error) {
	if err := hg.checkOpen(); err != nil {
		return nil, err
	}
	return hg.idx.SymbolsWithRoot(ctx, root)
}

// EdgesWithSymbols returns every edge containing all of atomsTuple as
// direct children plus a direct-child atom rooted at root.
func (hg *HyperGraph) EdgesWithSymbols(ctx context.Context, atomsTuple []element.Atom, root string) (map[string]element.Edge, error) {
	if err := hg.checkOpen(); err != nil {
		return nil, err
	}
	return hg.idx.EdgesWithSymbols(ctx, atomsTuple, root)
}

// All returns every currently materialised atom and edge.
func (hg *HyperGraph) All(ctx context.Context) ([]element.Element, error) {
	if err := hg.checkOpen(); err != nil {
		return nil, err
	}
	return hg.idx.All(ctx)
}

// AllAttributes returns every materialised element paired with its
// attribute record.
func (hg *HyperGraph) AllAttributes(ctx context.Context) ([]hyperindex.AttrPair, error) {
	if err := hg.checkOpen(); err != nil {
		return nil, err
	}
	return hg.idx.AllAttributes(ctx)
}

// Degree returns e's degree (0 if e has no record).
func (hg *HyperGraph) Degree(ctx context.Context, e element.Element) (int64, error) {
	if err := hg.checkOpen(); err != nil {
		return 0, err
	}
	return hg.idx.Degree(ctx, e)
}

// SymbolCount returns the number of distinct atoms currently materialised.
func (hg *HyperGraph) SymbolCount() int64 { return hg.idx.SymbolCount() }

// EdgeCount returns the number of distinct edges currently materialised.
func (hg *HyperGraph) EdgeCount() int64 { return hg.idx.EdgeCount() }

// TotalDegree returns the sum of d over every materialised element.
func (hg *HyperGraph) TotalDegree() int64 { return hg.idx.TotalDegree() }

// GetIntAttribute returns e's name attribute as an integer, or def if absent.
func (hg *HyperGraph) GetIntAttribute(ctx context.Context, e element.Element, name string, def int64) (int64, error) {
	if err := hg.checkOpen(); err != nil {
		return def, err
	}
	return hg.idx.Attributes().GetInt(ctx, e, name, def)
}

// GetFloatAttribute returns e's name attribute as a float, or def if absent.
func (hg *HyperGraph) GetFloatAttribute(ctx context.Context, e element.Element, name string, def float64) (float64, error) {
	if err := hg.checkOpen(); err != nil {
		return def, err
	}
	return hg.idx.Attributes().GetFloat(ctx, e, name, def)
}

// GetStrAttribute returns e's name attribute as a string, or def if absent.
func (hg *HyperGraph) GetStrAttribute(ctx context.Context, e element.Element, name, def string) (string, error) {
	if err := hg.checkOpen(); err != nil {
		return def, err
	}
	return hg.idx.Attributes().GetStr(ctx, e, name, def)
}

// SetAttribute stores value under name on e's record.
func (hg *HyperGraph) SetAttribute(ctx context.Context, e element.Element, name string, value any) error {
	if err := hg.checkOpen(); err != nil {
		return err
	}
	return hg.idx.Attributes().Set(ctx, e, name, value)
}

// IncAttribute adds 1 to e's name attribute.
func (hg *HyperGraph) IncAttribute(ctx context.Context, e element.Element, name string) error {
	if err := hg.checkOpen(); err != nil {
		return err
	}
	return hg.idx.Attributes().Inc(ctx, e, name)
}

// DecAttribute subtracts 1 from e's name attribute.
func (hg *HyperGraph) DecAttribute(ctx context.Context, e element.Element, name string) error {
	if err := hg.checkOpen(); err != nil {
		return err
	}
	return hg.idx.Attributes().Dec(ctx, e, name)
}
