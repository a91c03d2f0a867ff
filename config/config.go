// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/katalvlaran/hyperbase/herr"
	"github.com/katalvlaran/hyperbase/kvbackend"
	"github.com/katalvlaran/hyperbase/kvbackend/badgerdb"
	"github.com/katalvlaran/hyperbase/kvbackend/memkv"
)

// Config is the Go shape of the construction map every backend is
// opened from: which engine (Backend) and, for engines that need one,
// where its data lives (Hg).
type Config struct {
	Backend string // "badger" or "memory"
	Hg      string // data directory, meaningful only for "badger"
}

// New builds the kvbackend.Backend named by raw's "backend" field.
// raw is the language-neutral construction map of spec.md §6; New is
// the one place that decodes it into a Config and opens the engine.
func New(raw map[string]any) (kvbackend.Backend, error) {
	cfg := Config{Backend: "memory"}
	if v, ok := raw["backend"]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, herr.Wrap("config.New", ErrUnknownBackend, fmt.Errorf("backend must be a string, got %T", v))
		}
		cfg.Backend = s
	}
	if v, ok := raw["hg"]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, herr.Wrap("config.New", ErrUnknownBackend, fmt.Errorf("hg must be a string, got %T", v))
		}
		cfg.Hg = s
	}
	return Open(cfg)
}

// Open builds the kvbackend.Backend named by cfg.Backend.
func Open(cfg Config) (kvbackend.Backend, error) {
	switch cfg.Backend {
	case "memory", "":
		return memkv.New(), nil
	case "badger":
		db, err := badgerdb.Open(badgerdb.Options{Dir: cfg.Hg})
		if err != nil {
			return nil, herr.Wrap("config.Open", herr.ErrBackend, err)
		}
		return db, nil
	default:
		return nil, herr.Wrap("config.Open", ErrUnknownBackend, fmt.Errorf("backend=%q", cfg.Backend))
	}
}
