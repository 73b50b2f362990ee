// Package encterm packs parsed RDF terms into a fixed-size, hash-addressed
// key suitable for use as a map key or a KV-store key.
package encterm

import (
	"encoding/binary"
	"fmt"

	"github.com/geoknoesis/ttlfsm/pkg/rdf"
	"github.com/zeebo/xxh3"
)

const (
	// maxInline is the largest string value stored verbatim instead of
	// hashed; short IRIs, blank-node labels, and literal values fit
	// directly in the key and never collide.
	maxInline = 16

	// Size is the width of a Key: one type byte plus 16 bytes of either a
	// 128-bit xxh3 hash or an inlined short value.
	Size = 17
)

// kind tags which term shape (and, for literals, which shortcut datatype)
// produced a Key.
type kind byte

const (
	kindIRI kind = iota + 1
	kindBlankNode
	kindLiteralString
	kindLiteralLang
	kindLiteralInteger
	kindLiteralDecimal
	kindLiteralDouble
	kindLiteralBoolean
	kindLiteralOther
)

// Key is a term encoded as a type byte followed by 16 bytes of data.
type Key [Size]byte

// Hash128 computes a 128-bit xxh3 hash of s, packed big-endian.
func Hash128(s string) [16]byte {
	h := xxh3.Hash128([]byte(s))
	var out [16]byte
	binary.BigEndian.PutUint64(out[0:8], h.Hi)
	binary.BigEndian.PutUint64(out[8:16], h.Lo)
	return out
}

// inlineOrHash fills data[1:] with s verbatim if it fits in maxInline bytes,
// otherwise with its xxh3 hash. Short values therefore encode losslessly;
// long values collapse to a fixed-width, collision-resistant digest.
func inlineOrHash(data *Key, s string) {
	if len(s) <= maxInline {
		copy(data[1:], s)
		return
	}
	h := Hash128(s)
	copy(data[1:], h[:])
}

// Encode packs an rdf.Term into a Key. Unrecognized term implementations
// are rejected -- the parser only ever produces *rdf.IRI, *rdf.BlankNode,
// and *rdf.Literal.
func Encode(t rdf.Term) (Key, error) {
	var k Key
	switch v := t.(type) {
	case *rdf.IRI:
		k[0] = byte(kindIRI)
		inlineOrHash(&k, v.Value)
		return k, nil
	case *rdf.BlankNode:
		k[0] = byte(kindBlankNode)
		inlineOrHash(&k, v.ID)
		return k, nil
	case *rdf.Literal:
		return encodeLiteral(v)
	default:
		return k, fmt.Errorf("encterm: unsupported term type %T", t)
	}
}

func encodeLiteral(lit *rdf.Literal) (Key, error) {
	var k Key
	switch {
	case lit.Lang != "":
		k[0] = byte(kindLiteralLang)
		inlineOrHash(&k, lit.Lexical+"@"+lit.Lang)
		return k, nil
	case lit.Datatype == nil:
		k[0] = byte(kindLiteralString)
		inlineOrHash(&k, lit.Lexical)
		return k, nil
	case lit.Datatype.Value == rdf.XSDInteger.Value:
		k[0] = byte(kindLiteralInteger)
	case lit.Datatype.Value == rdf.XSDDecimal.Value:
		k[0] = byte(kindLiteralDecimal)
	case lit.Datatype.Value == rdf.XSDDouble.Value:
		k[0] = byte(kindLiteralDouble)
	case lit.Datatype.Value == rdf.XSDBoolean.Value:
		k[0] = byte(kindLiteralBoolean)
	default:
		k[0] = byte(kindLiteralOther)
	}
	inlineOrHash(&k, lit.Lexical+"^^"+lit.Datatype.Value)
	return k, nil
}
