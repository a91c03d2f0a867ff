// SPDX-License-Identifier: MIT
//
// Package memkv is an in-memory, dependency-free implementation of
// kvbackend.Backend. It keeps one sorted slice of entries and locates
// keys by binary search, which makes it a direct, readable reference
// for the ordering and prefix-scan contract every other engine must
// honor (spec.md §4.4).
package memkv

import (
	"bytes"
	"context"
	"sort"
	"sync"

	"github.com/katalvlaran/hyperbase/kvbackend"
)

// Store is a sorted in-memory key-value store.
type Store struct {
	mu      sync.RWMutex
	entries []kvbackend.Entry
	closed  bool
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

var _ kvbackend.Backend = (*Store)(nil)

// search returns the index of key, or the insertion point and false.
func (s *Store) search(key []byte) (int, bool) {
	i := sort.Search(len(s.entries), func(i int) bool {
		return bytes.Compare(s.entries[i].Key, key) >= 0
	})
	if i < len(s.entries) && bytes.Equal(s.entries[i].Key, key) {
		return i, true
	}
	return i, false
}

func (s *Store) get(key []byte) ([]byte, bool) {
	i, ok := s.search(key)
	if !ok {
		return nil, false
	}
	v := make([]byte, len(s.entries[i].Value))
	copy(v, s.entries[i].Value)
	return v, true
}

func (s *Store) put(key, value []byte) {
	k := append([]byte(nil), key...)
	v := append([]byte(nil), value...)
	i, ok := s.search(k)
	if ok {
		s.entries[i].Value = v
		return
	}
	s.entries = append(s.entries, kvbackend.Entry{})
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = kvbackend.Entry{Key: k, Value: v}
}

func (s *Store) delete(key []byte) {
	i, ok := s.search(key)
	if !ok {
		return
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
}

// Get implements kvbackend.Backend.
func (s *Store) Get(_ context.Context, key []byte) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, kvbackend.ErrClosed
	}
	v, ok := s.get(key)
	if !ok {
		return nil, kvbackend.ErrNotFound
	}
	return v, nil
}

// Put implements kvbackend.Backend.
func (s *Store) Put(_ context.Context, key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return kvbackend.ErrClosed
	}
	s.put(key, value)
	return nil
}

// Delete implements kvbackend.Backend.
func (s *Store) Delete(_ context.Context, key []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return kvbackend.ErrClosed
	}
	s.delete(key)
	return nil
}

// Scan implements kvbackend.Backend. The returned slice is a point-in-time
// snapshot copy; later mutations never retroactively alter it.
func (s *Store) Scan(_ context.Context, prefix []byte, limit int) ([]kvbackend.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, kvbackend.ErrClosed
	}
	start := sort.Search(len(s.entries), func(i int) bool {
		return bytes.Compare(s.entries[i].Key, prefix) >= 0
	})
	out := make([]kvbackend.Entry, 0, 16)
	for i := start; i < len(s.entries); i++ {
		e := s.entries[i]
		if !bytes.HasPrefix(e.Key, prefix) {
			break
		}
		out = append(out, kvbackend.Entry{
			Key:   append([]byte(nil), e.Key...),
			Value: append([]byte(nil), e.Value...),
		})
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// batchWriter buffers mutations for Batch and applies them only on commit.
type batchWriter struct {
	puts    []kvbackend.Entry
	deletes [][]byte
}

func (w *batchWriter) Put(key, value []byte) error {
	w.puts = append(w.puts, kvbackend.Entry{
		Key:   append([]byte(nil), key...),
		Value: append([]byte(nil), value...),
	})
	return nil
}

func (w *batchWriter) Delete(key []byte) error {
	w.deletes = append(w.deletes, append([]byte(nil), key...))
	return nil
}

// Batch implements kvbackend.Backend. fn's writes are invisible until it
// returns nil, at which point they are applied atomically under one lock.
func (s *Store) Batch(_ context.Context, fn func(w kvbackend.Writer) error) error {
	w := &batchWriter{}
	if err := fn(w); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return kvbackend.ErrClosed
	}
	for _, e := range w.puts {
		s.put(e.Key, e.Value)
	}
	for _, k := range w.deletes {
		s.delete(k)
	}
	return nil
}

// Destroy implements kvbackend.Backend.
func (s *Store) Destroy(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return kvbackend.ErrClosed
	}
	s.entries = nil
	return nil
}

// Close implements kvbackend.Backend.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.entries = nil
	return nil
}
