// SPDX-License-Identifier: MIT

package hyperindex

import (
	"context"

	"github.com/katalvlaran/hyperbase/element"
	"github.com/katalvlaran/hyperbase/herr"
	"github.com/katalvlaran/hyperbase/kvbackend"
	"github.com/katalvlaran/hyperbase/permutation"
	"github.com/katalvlaran/hyperbase/storekey"
	"github.com/zeebo/xxh3"
)

// Pattern is a fixed-arity position spec: a nil entry is a wildcard,
// a non-nil entry must match exactly at that position.
type Pattern []element.Element

// reconstruct decodes one scanned p-key hit back into the edge's
// children in their true original order, by inverting the rotation
// named in its k_tag.
func reconstruct(key []byte) (element.Edge, error) {
	rendering, k, err := storekey.DecodePermKey(key)
	if err != nil {
		return nil, err
	}
	el, err := element.Parse(rendering)
	if err != nil {
		return nil, err
	}
	edge, ok := el.(element.Edge)
	if !ok {
		return nil, storekey.ErrBadKey
	}
	arity := len(edge)

	identity := make([]int, arity)
	for i := range identity {
		identity[i] = i
	}
	originalIndexAt, err := permutation.Permutate(identity, k)
	if err != nil {
		return nil, err
	}

	original := make(element.Edge, arity)
	for rotatedPos, origIdx := range originalIndexAt {
		original[origIdx] = edge[rotatedPos]
	}
	return original, nil
}

// concreteTokens returns the rendered values of pattern's non-wildcard
// positions, in their original left-to-right order. Some rotation among
// an edge's n! witness rows always places exactly this subsequence as
// its leading tokens (with every wildcard position moved to the end),
// so this is a valid scan prefix regardless of where the wildcards fall.
func concreteTokens(pattern Pattern) []string {
	tokens := make([]string, 0, len(pattern))
	for _, p := range pattern {
		if p == nil {
			continue
		}
		tokens = append(tokens, element.Render(p))
	}
	return tokens
}

// Pattern2Edges returns every edge matching pattern. When openEnded is
// true, edges of greater arity whose first len(pattern) positions match
// are also returned (spec.md §4.6).
func (idx *Index) Pattern2Edges(ctx context.Context, pattern Pattern, openEnded bool) (map[string]element.Edge, error) {
	n := len(pattern)
	if n == 0 {
		return nil, herr.Wrap("hyperindex.Pattern2Edges", ErrBadPattern, nil)
	}
	tokens := concreteTokens(pattern)
	if len(tokens) == n {
		// With no wildcard, an arity-n edge's rendering closes right after
		// its last token, so scan by all but the last one.
		tokens = tokens[:n-1]
	}
	prefix := storekey.PermScanPrefix(tokens)

	entries, err := idx.backend.Scan(ctx, prefix, 0)
	if err != nil {
		return nil, herr.Wrap("hyperindex.Pattern2Edges", herr.ErrBackend, err)
	}

	seen := make(map[uint64]bool)
	out := make(map[string]element.Edge)
	for _, e := range entries {
		edge, err := reconstruct(e.Key)
		if err != nil {
			continue
		}
		arity := len(edge)
		if openEnded {
			if arity < n {
				continue
			}
		} else if arity != n {
			continue
		}

		match := true
		for i := 0; i < n; i++ {
			if pattern[i] != nil && element.Render(pattern[i]) != element.Render(edge[i]) {
				match = false
				break
			}
		}
		if !match {
			continue
		}

		rendering := element.Render(edge)
		h := xxh3.HashString(rendering)
		if seen[h] {
			continue
		}
		seen[h] = true
		out[rendering] = edge
	}
	return out, nil
}

// Star returns every edge that contains el as a direct child in any
// position, up to limit results (limit <= 0 means unlimited). Selection
// among ties when limit is hit follows backend scan order, which is
// deterministic for a fixed store state (spec.md §9, open question a).
func (idx *Index) Star(ctx context.Context, el element.Element, limit int) (map[string]element.Edge, error) {
	prefix := storekey.PermScanPrefix([]string{element.Render(el)})

	entries, err := idx.backend.Scan(ctx, prefix, 0)
	if err != nil {
		return nil, herr.Wrap("hyperindex.Star", herr.ErrBackend, err)
	}

	target := element.Render(el)
	seen := make(map[uint64]bool)
	out := make(map[string]element.Edge)
	for _, e := range entries {
		edge, err := reconstruct(e.Key)
		if err != nil {
			continue
		}
		contains := false
		for _, c := range edge {
			if element.Render(c) == target {
				contains = true
				break
			}
		}
		if !contains {
			continue
		}

		rendering := element.Render(edge)
		h := xxh3.HashString(rendering)
		if seen[h] {
			continue
		}
		seen[h] = true
		out[rendering] = edge

		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// SymbolsWithRoot returns every atom a such that element.Root(a) == root.
func (idx *Index) SymbolsWithRoot(ctx context.Context, root string) (map[string]element.Atom, error) {
	out := make(map[string]element.Atom)

	entries, err := idx.backend.Scan(ctx, storekey.RootPrefix(root), 0)
	if err != nil {
		return nil, herr.Wrap("hyperindex.SymbolsWithRoot", herr.ErrBackend, err)
	}
	for _, e := range entries {
		name := string(e.Key[1:])
		out[name] = element.Atom(name)
	}

	_, err = idx.backend.Get(ctx, storekey.RootBareKey(root))
	switch err {
	case nil:
		out[root] = element.Atom(root)
	case kvbackend.ErrNotFound:
		// no bare atom equal to root; fine.
	default:
		return nil, herr.Wrap("hyperindex.SymbolsWithRoot", herr.ErrBackend, err)
	}
	return out, nil
}

// EdgesWithSymbols returns every edge that contains all of atomsTuple as
// direct children plus some direct-child atom whose root equals root
// exactly (spec.md §4.6).
func (idx *Index) EdgesWithSymbols(ctx context.Context, atomsTuple []element.Atom, root string) (map[string]element.Edge, error) {
	candidates := make(map[string]element.Edge)

	if len(atomsTuple) > 0 {
		hits, err := idx.Star(ctx, atomsTuple[0], 0)
		if err != nil {
			return nil, err
		}
		candidates = hits
	} else {
		anchors, err := idx.SymbolsWithRoot(ctx, root)
		if err != nil {
			return nil, err
		}
		for _, a := range anchors {
			hits, err := idx.Star(ctx, a, 0)
			if err != nil {
				return nil, err
			}
			for k, v := range hits {
				candidates[k] = v
			}
		}
	}

	required := make([]string, len(atomsTuple))
	for i, a := range atomsTuple {
		required[i] = element.Render(a)
	}

	out := make(map[string]element.Edge)
	for rendering, edge := range candidates {
		childTokens := make(map[string]bool, len(edge))
		rootMatch := false
		for _, c := range edge {
			childTokens[element.Render(c)] = true
			if a, ok := c.(element.Atom); ok && element.Root(a) == root {
				rootMatch = true
			}
		}
		if !rootMatch {
			continue
		}
		hasAll := true
		for _, r := range required {
			if !childTokens[r] {
				hasAll = false
				break
			}
		}
		if hasAll {
			out[rendering] = edge
		}
	}
	return out, nil
}
