// Package ttlstore persists parsed triples into an embedded badger key-value
// store, indexed three ways (SPO, POS, OSP) so any term position can seed a
// scan.
package ttlstore

import (
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/geoknoesis/ttlfsm/internal/encterm"
	"github.com/geoknoesis/ttlfsm/pkg/rdf"
)

// index tags which permutation of (subject, predicate, object) a key was
// built from, so a scan over one index can be told apart from another.
type index byte

const (
	indexSPO index = iota + 1
	indexPOS
	indexOSP
)

// Sink is an rdf.Emitter backed by an embedded badger.DB. Each Emit writes
// one key per index inside a single transaction.
type Sink struct {
	db *badger.DB
}

// Open creates or reuses a badger database rooted at dir. The embedded
// store's own logger is disabled, following this module's storage
// convention of never letting a third-party library log on our behalf
// (logging-as-a-feature is out of scope; silencing a library's own default
// logger is not the same thing).
func Open(dir string) (*Sink, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("ttlstore: open %s: %w", dir, err)
	}
	return &Sink{db: db}, nil
}

// Close releases the underlying database.
func (s *Sink) Close() error {
	return s.db.Close()
}

// Emit writes SPO/POS/OSP index entries for t in one read-write
// transaction.
func (s *Sink) Emit(t rdf.Triple) error {
	sk, err := encterm.Encode(t.Subject)
	if err != nil {
		return err
	}
	pk, err := encterm.Encode(t.Predicate)
	if err != nil {
		return err
	}
	ok, err := encterm.Encode(t.Object)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(indexKey(indexSPO, sk, pk, ok), nil); err != nil {
			return err
		}
		if err := txn.Set(indexKey(indexPOS, pk, ok, sk), nil); err != nil {
			return err
		}
		return txn.Set(indexKey(indexOSP, ok, sk, pk), nil)
	})
}

// indexKey concatenates an index tag with three encoded terms, in the
// order that index orders its lookups, so keys sort lexicographically by
// the leading term.
func indexKey(idx index, a, b, c encterm.Key) []byte {
	key := make([]byte, 0, 1+3*encterm.Size)
	key = append(key, byte(idx))
	key = append(key, a[:]...)
	key = append(key, b[:]...)
	key = append(key, c[:]...)
	return key
}

// CountSPO returns the number of distinct SPO index entries written so far,
// a cheap smoke test that every Emit actually persisted.
func (s *Sink) CountSPO() (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte{byte(indexSPO)}
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}
