// SPDX-License-Identifier: MIT

package attribute

import (
	"context"

	"github.com/katalvlaran/hyperbase/element"
	"github.com/katalvlaran/hyperbase/herr"
	"github.com/katalvlaran/hyperbase/kvbackend"
	"github.com/katalvlaran/hyperbase/storekey"
)

// Store addresses attribute records by element, through a
// kvbackend.Backend. It holds no in-process cache: every call reads the
// backend (Set, Inc and Dec read and then write it), per spec.md §5
// ("no suspension points, only backend I/O blocks").
type Store struct {
	backend kvbackend.Backend
}

// New returns a Store reading and writing through b.
func New(b kvbackend.Backend) *Store {
	return &Store{backend: b}
}

// Exists reports whether e has a stored record at all.
func (s *Store) Exists(ctx context.Context, e element.Element) (bool, error) {
	_, err := s.backend.Get(ctx, storekey.VertexKey(e))
	if err == kvbackend.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, herr.Wrap("attribute.Exists", herr.ErrBackend, err)
	}
	return true, nil
}

// Load returns e's record, or an empty NewRecord() if none exists yet.
func (s *Store) Load(ctx context.Context, e element.Element) (Record, error) {
	data, err := s.backend.Get(ctx, storekey.VertexKey(e))
	if err == kvbackend.ErrNotFound {
		return NewRecord(), nil
	}
	if err != nil {
		return nil, herr.Wrap("attribute.Load", herr.ErrBackend, err)
	}
	rec, err := Decode(data)
	if err != nil {
		return nil, herr.Wrap("attribute.Load", ErrMalformedRecord, err)
	}
	return rec, nil
}

// Save persists e's record directly (not inside a batch). Callers that
// must combine a record write with other mutations (hyperindex.Add,
// hyperindex.Remove) instead encode the record themselves and write it
// through a kvbackend.Writer inside their own Batch call.
func (s *Store) Save(ctx context.Context, e element.Element, rec Record) error {
	if err := s.backend.Put(ctx, storekey.VertexKey(e), Encode(rec)); err != nil {
		return herr.Wrap("attribute.Save", herr.ErrBackend, err)
	}
	return nil
}

// GetInt returns e's name attribute as an integer, or def if absent. If
// name is set under a different kind, it returns def and ErrWrongType
// (not a "missing key" case, so spec.md §7's never-error-on-absence rule
// does not cover it).
func (s *Store) GetInt(ctx context.Context, e element.Element, name string, def int64) (int64, error) {
	rec, err := s.Load(ctx, e)
	if err != nil {
		return def, err
	}
	if f, ok := rec[name]; ok && f.Kind != kindInt {
		return def, herr.Wrap("attribute.GetInt", ErrWrongType, nil)
	}
	return rec.GetInt(name, def), nil
}

// GetFloat returns e's name attribute as a float, or def if absent. If
// name is set under a different kind, it returns def and ErrWrongType.
func (s *Store) GetFloat(ctx context.Context, e element.Element, name string, def float64) (float64, error) {
	rec, err := s.Load(ctx, e)
	if err != nil {
		return def, err
	}
	if f, ok := rec[name]; ok && f.Kind != kindFloat {
		return def, herr.Wrap("attribute.GetFloat", ErrWrongType, nil)
	}
	return rec.GetFloat(name, def), nil
}

// GetStr returns e's name attribute as a string, or def if absent. If
// name is set under a different kind, it returns def and ErrWrongType.
func (s *Store) GetStr(ctx context.Context, e element.Element, name, def string) (string, error) {
	rec, err := s.Load(ctx, e)
	if err != nil {
		return def, err
	}
	if f, ok := rec[name]; ok && f.Kind != kindStr {
		return def, herr.Wrap("attribute.GetStr", ErrWrongType, nil)
	}
	return rec.GetStr(name, def), nil
}

// Set stores value under name on e's record, creating the record if
// it did not already exist.
func (s *Store) Set(ctx context.Context, e element.Element, name string, value any) error {
	rec, err := s.Load(ctx, e)
	if err != nil {
		return err
	}
	rec.Set(name, value)
	return s.Save(ctx, e, rec)
}

// Inc adds 1 to e's name attribute, treating an absent attribute as 0.
func (s *Store) Inc(ctx context.Context, e element.Element, name string) error {
	rec, err := s.Load(ctx, e)
	if err != nil {
		return err
	}
	rec.Inc(name)
	return s.Save(ctx, e, rec)
}

// Dec subtracts 1 from e's name attribute, treating an absent attribute
// as 0.
func (s *Store) Dec(ctx context.Context, e element.Element, name string) error {
	rec, err := s.Load(ctx, e)
	if err != nil {
		return err
	}
	rec.Dec(name)
	return s.Save(ctx, e, rec)
}

// Degree returns e's degree attribute, 0 if e has no record.
func (s *Store) Degree(ctx context.Context, e element.Element) (int64, error) {
	return s.GetInt(ctx, e, DegreeField, 0)
}
