package encterm

import (
	"testing"

	"github.com/geoknoesis/ttlfsm/pkg/rdf"
)

func TestEncodeIRIIsStableAndDistinct(t *testing.T) {
	a, err := Encode(rdf.NewIRI("http://example.org/alice"))
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	b, err := Encode(rdf.NewIRI("http://example.org/alice"))
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	c, err := Encode(rdf.NewIRI("http://example.org/bob"))
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if a != b {
		t.Errorf("expected identical IRIs to encode to the same key")
	}
	if a == c {
		t.Errorf("expected different IRIs to encode to different keys")
	}
}

func TestEncodeDistinguishesTermKinds(t *testing.T) {
	iriKey, _ := Encode(rdf.NewIRI("same"))
	bnodeKey, _ := Encode(rdf.NewBlankNode("same"))
	litKey, _ := Encode(rdf.NewLiteral("same"))

	if iriKey == bnodeKey || iriKey == litKey || bnodeKey == litKey {
		t.Errorf("expected an IRI, a blank node, and a literal with the same text to encode differently")
	}
}

func TestEncodeLiteralVariants(t *testing.T) {
	plain, _ := Encode(rdf.NewLiteral("hello"))
	lang, _ := Encode(rdf.NewLangLiteral("hello", "en"))
	typed, _ := Encode(rdf.NewTypedLiteral("hello", rdf.NewIRI("http://www.w3.org/2001/XMLSchema#string")))

	if plain == lang || plain == typed || lang == typed {
		t.Errorf("expected plain, language-tagged, and typed literals to encode differently")
	}
}

func TestEncodeLongValueIsHashed(t *testing.T) {
	longIRI := "http://example.org/a-much-longer-identifier-than-sixteen-bytes"
	short, _ := Encode(rdf.NewIRI("http://e.org/s"))
	long, _ := Encode(rdf.NewIRI(longIRI))

	if short[0] != long[0] {
		t.Fatalf("expected both to carry the IRI kind tag")
	}
	if h := Hash128(longIRI); string(long[1:]) != string(h[:]) {
		t.Errorf("expected the long IRI to be stored as its xxh3 hash")
	}
	// A short value is inlined verbatim; a long one is hashed, so the two
	// encodings must not collide even though both are IRIs.
	if short == long {
		t.Errorf("expected distinct keys for distinct IRIs regardless of length")
	}
}

func TestHashIndexedEmitterLookup(t *testing.T) {
	e := NewHashIndexedEmitter()
	s := rdf.NewIRI("http://example.org/s")
	p := rdf.NewIRI("http://example.org/p")
	o1 := rdf.NewIRI("http://example.org/o1")
	o2 := rdf.NewIRI("http://example.org/o2")

	if err := e.Emit(rdf.NewTriple(s, p, o1)); err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	if err := e.Emit(rdf.NewTriple(s, p, o2)); err != nil {
		t.Fatalf("emit failed: %v", err)
	}

	positions, err := e.LookupTerm(s)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if len(positions) != 2 {
		t.Fatalf("expected subject 's' to appear in 2 triples, got %d", len(positions))
	}

	positions, err = e.LookupTerm(o1)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if len(positions) != 1 || positions[0] != 0 {
		t.Errorf("expected o1 to be found only in triple 0, got %v", positions)
	}
}

func TestEncodeRejectsUnknownTermType(t *testing.T) {
	if _, err := Encode(unknownTerm{}); err == nil {
		t.Errorf("expected an error encoding an unrecognized term implementation")
	}
}

type unknownTerm struct{}

func (unknownTerm) Type() rdf.TermType        { return 0 }
func (unknownTerm) String() string            { return "unknown" }
func (unknownTerm) Equals(other rdf.Term) bool { return false }
