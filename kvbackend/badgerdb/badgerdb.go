// SPDX-License-Identifier: MIT

package badgerdb

import (
	"context"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/katalvlaran/hyperbase/herr"
	"github.com/katalvlaran/hyperbase/kvbackend"
)

// Options configures Open. Dir is the only required field; InMemory
// trades durability for a badger instance with no on-disk footprint
// (useful for tests that still want exact badger iterator semantics).
type Options struct {
	Dir      string
	InMemory bool
	Logger   Logger
}

// DB wraps a badger.DB behind kvbackend.Backend.
type DB struct {
	db *badger.DB
}

var _ kvbackend.Backend = (*DB)(nil)

// Open opens (creating if absent) a badger database per opts.
func Open(opts Options) (*DB, error) {
	bopts := badger.DefaultOptions(opts.Dir)
	if opts.InMemory {
		bopts = bopts.WithInMemory(true)
	}
	if opts.Logger != nil {
		bopts = bopts.WithLogger(opts.Logger)
	} else {
		bopts = bopts.WithLogger(noopLogger{})
	}

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, herr.Wrap("badgerdb.Open", ErrOpen, err)
	}
	return &DB{db: db}, nil
}

// Get implements kvbackend.Backend.
func (d *DB) Get(_ context.Context, key []byte) ([]byte, error) {
	var out []byte
	err := d.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			out = append([]byte(nil), val...)
			return nil
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, kvbackend.ErrNotFound
	}
	if err != nil {
		return nil, herr.Wrap("badgerdb.Get", herr.ErrBackend, err)
	}
	return out, nil
}

// Put implements kvbackend.Backend.
func (d *DB) Put(_ context.Context, key, value []byte) error {
	err := d.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		return herr.Wrap("badgerdb.Put", herr.ErrBackend, err)
	}
	return nil
}

// Delete implements kvbackend.Backend.
func (d *DB) Delete(_ context.Context, key []byte) error {
	err := d.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		return herr.Wrap("badgerdb.Delete", herr.ErrBackend, err)
	}
	return nil
}

// Scan implements kvbackend.Backend using badger's prefix-seeking iterator.
func (d *DB) Scan(_ context.Context, prefix []byte, limit int) ([]kvbackend.Entry, error) {
	var out []kvbackend.Entry
	err := d.db.View(func(txn *badger.Txn) error {
		iopts := badger.DefaultIteratorOptions
		iopts.PrefetchValues = true
		it := txn.NewIterator(iopts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			key := append([]byte(nil), item.Key()...)
			err := item.Value(func(val []byte) error {
				out = append(out, kvbackend.Entry{
					Key:   key,
					Value: append([]byte(nil), val...),
				})
				return nil
			})
			if err != nil {
				return err
			}
			if limit > 0 && len(out) >= limit {
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, herr.Wrap("badgerdb.Scan", herr.ErrBackend, err)
	}
	return out, nil
}

// badgerWriter adapts a badger.Txn to kvbackend.Writer.
type badgerWriter struct {
	txn *badger.Txn
}

func (w badgerWriter) Put(key, value []byte) error { return w.txn.Set(key, value) }
func (w badgerWriter) Delete(key []byte) error     { return w.txn.Delete(key) }

// Batch implements kvbackend.Backend. Badger transactions are already
// atomic; fn's mutations commit together or not at all.
func (d *DB) Batch(_ context.Context, fn func(w kvbackend.Writer) error) error {
	err := d.db.Update(func(txn *badger.Txn) error {
		return fn(badgerWriter{txn: txn})
	})
	if err != nil {
		return herr.Wrap("badgerdb.Batch", herr.ErrBackend, err)
	}
	return nil
}

// Destroy implements kvbackend.Backend by dropping every key in the
// default namespace.
func (d *DB) Destroy(_ context.Context) error {
	if err := d.db.DropAll(); err != nil {
		return herr.Wrap("badgerdb.Destroy", herr.ErrBackend, err)
	}
	return nil
}

// Close implements kvbackend.Backend.
func (d *DB) Close() error {
	if err := d.db.Close(); err != nil {
		return herr.Wrap("badgerdb.Close", herr.ErrBackend, err)
	}
	return nil
}
