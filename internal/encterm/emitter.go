package encterm

import "github.com/geoknoesis/ttlfsm/pkg/rdf"

// HashIndexedEmitter wraps an in-memory triple buffer with a secondary
// index from encoded term to the positions of triples it participates in,
// giving xxh3-based term hashing a concrete consumer inside the parser's
// own Emitter contract rather than only inside the storage backend.
type HashIndexedEmitter struct {
	Triples []rdf.Triple
	index   map[Key][]int
}

// NewHashIndexedEmitter returns an empty HashIndexedEmitter.
func NewHashIndexedEmitter() *HashIndexedEmitter {
	return &HashIndexedEmitter{index: make(map[Key][]int)}
}

func (e *HashIndexedEmitter) Emit(t rdf.Triple) error {
	pos := len(e.Triples)
	e.Triples = append(e.Triples, t)
	for _, term := range []rdf.Term{t.Subject, t.Predicate, t.Object} {
		key, err := Encode(term)
		if err != nil {
			return err
		}
		e.index[key] = append(e.index[key], pos)
	}
	return nil
}

// Lookup returns the positions within Triples of every triple that has a
// term encoding equal to key, in emission order.
func (e *HashIndexedEmitter) Lookup(key Key) []int {
	return e.index[key]
}

// LookupTerm is a convenience that encodes t and calls Lookup.
func (e *HashIndexedEmitter) LookupTerm(t rdf.Term) ([]int, error) {
	key, err := Encode(t)
	if err != nil {
		return nil, err
	}
	return e.Lookup(key), nil
}
