// Package perftcache memoizes perft node counts keyed by (FEN, depth) in an
// embedded BadgerDB, storing each result as a JSON value written with
// db.Update and read back with db.View. It has nothing
// to do with search: it only saves a CLI user from re-walking a tree they
// already walked in a previous run.
package perftcache

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// Store wraps a BadgerDB instance holding memoized perft results.
type Store struct {
	db *badger.DB
}

// entry is the JSON payload stored per key, carrying the node count plus
// enough context to make a stray key collision detectable.
type entry struct {
	FEN   string `json:"fen"`
	Depth int    `json:"depth"`
	Nodes int64  `json:"nodes"`
}

// Open opens or creates a perft cache at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("perftcache: open %s: %v", dir, err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func cacheKey(fen string, depth int) []byte {
	return []byte(fmt.Sprintf("%s|%d", fen, depth))
}

// Get returns the memoized node count for (fen, depth), and whether it was
// found.
func (s *Store) Get(fen string, depth int) (int64, bool) {
	var nodes int64
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(cacheKey(fen, depth))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var e entry
			if err := json.Unmarshal(val, &e); err != nil {
				return err
			}
			nodes = e.Nodes
			found = true
			return nil
		})
	})
	if err != nil {
		return 0, false
	}
	return nodes, found
}

// Put memoizes nodes as the perft result for (fen, depth).
func (s *Store) Put(fen string, depth int, nodes int64) error {
	data, err := json.Marshal(entry{FEN: fen, Depth: depth, Nodes: nodes})
	if err != nil {
		return fmt.Errorf("perftcache: marshal entry: %v", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(cacheKey(fen, depth), data)
	})
}
