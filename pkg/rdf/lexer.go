package rdf

import (
	"strconv"
	"strings"
)

// isPnCharsBase reports whether r is in the Turtle PN_CHARS_BASE set: ASCII
// letters plus the Unicode ranges listed in the glossary.
func isPnCharsBase(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		return true
	case r >= 0x00C0 && r <= 0x00D6:
		return true
	case r >= 0x00D8 && r <= 0x00F6:
		return true
	case r >= 0x00F8 && r <= 0x02FF:
		return true
	case r >= 0x0370 && r <= 0x037D:
		return true
	case r >= 0x037F && r <= 0x1FFF:
		return true
	case r >= 0x200C && r <= 0x200D:
		return true
	case r >= 0x2070 && r <= 0x218F:
		return true
	case r >= 0x2C00 && r <= 0x2FEF:
		return true
	case r >= 0x3001 && r <= 0xD7FF:
		return true
	case r >= 0xF900 && r <= 0xFDCF:
		return true
	case r >= 0xFDF0 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0xEFFFF:
		return true
	default:
		return false
	}
}

// isPnCharsU extends PN_CHARS_BASE with underscore, as Turtle's PN_LOCAL
// start-character class does.
func isPnCharsU(r rune) bool {
	return isPnCharsBase(r) || r == '_'
}

// isPnChars extends PN_CHARS_U with digits, '-', and the combining-mark /
// connector-punctuation ranges Turtle allows inside (not at the start of) a
// name.
func isPnChars(r rune) bool {
	if isPnCharsU(r) || r == '-' || (r >= '0' && r <= '9') {
		return true
	}
	switch {
	case r == 0x00B7:
		return true
	case r >= 0x0300 && r <= 0x036F:
		return true
	case r >= 0x203F && r <= 0x2040:
		return true
	default:
		return false
	}
}

// nonIRI is the set of code points disallowed unescaped inside an IRI
// reference, realized as a 128-entry lookup table for the dense ASCII
// range plus a membership check for the handful of non-ASCII members (none
// in this grammar -- the high code points are all allowed in IRIs).
var nonIRIASCII [128]bool

func init() {
	for c := rune(0x00); c <= 0x20; c++ {
		nonIRIASCII[c] = true
	}
	for _, c := range []rune{'<', '"', '{', '}', '|', '^', '`'} {
		nonIRIASCII[c] = true
	}
}

func isDisallowedIRIChar(r rune) bool {
	if r >= 0 && r < 128 {
		return nonIRIASCII[r]
	}
	return false
}

// readUnicodeEscape parses the four (\u) or eight (\U) hex digits following
// a backslash already consumed by the caller, returning the decoded scalar
// value.
func (p *Parser) readUnicodeEscape(long bool) (rune, error) {
	n := 4
	if long {
		n = 8
	}
	var digits strings.Builder
	for i := 0; i < n; i++ {
		c := p.src.Peek()
		if !isHexDigit(c) {
			return 0, p.errf(ErrInvalidUnicodeEscape, "expected %d hex digits", n)
		}
		digits.WriteRune(p.src.Advance())
	}
	v, err := strconv.ParseInt(digits.String(), 16, 64)
	if err != nil {
		return 0, p.errf(ErrInvalidUnicodeEscape, "%v", err)
	}
	return rune(v), nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// readIRIRef reads an IRI reference body, the '<' sigil already consumed.
// Absolute or relative; relative IRIs are resolved against base by the
// caller.
func (p *Parser) readIRIRef() (string, error) {
	var b strings.Builder
	for {
		c := p.src.Peek()
		switch {
		case c == eof:
			return "", p.errf(ErrUnexpectedEOF, "unterminated IRI reference")
		case c == '>':
			p.src.Advance()
			return b.String(), nil
		case c == '\\':
			p.src.Advance()
			esc := p.src.Peek()
			switch esc {
			case 'u':
				p.src.Advance()
				r, err := p.readUnicodeEscape(false)
				if err != nil {
					return "", err
				}
				b.WriteRune(r)
			case 'U':
				p.src.Advance()
				r, err := p.readUnicodeEscape(true)
				if err != nil {
					return "", err
				}
				b.WriteRune(r)
			default:
				return "", p.errf(ErrInvalidIRI, "invalid escape sequence in IRI")
			}
		case isDisallowedIRIChar(c):
			return "", p.errf(ErrInvalidIRI, "disallowed character %q in IRI", c)
		default:
			b.WriteRune(p.src.Advance())
		}
	}
}

// readPNameNS reads a prefix name up to (not including) the terminating
// ':'. The empty prefix ("" for the default namespace) is legal.
func (p *Parser) readPNameNS() (string, error) {
	var b strings.Builder
	first := true
	for {
		c := p.src.Peek()
		if c == ':' {
			return b.String(), nil
		}
		if first && !isPnCharsBase(c) {
			return "", p.errf(ErrUnexpectedCharacter, "expected a prefix name")
		}
		if !first && !isPnChars(c) && c != '.' {
			return b.String(), nil
		}
		b.WriteRune(p.src.Advance())
		first = false
	}
}

// readPNLocal reads the local part of a prefixed name, the ':' already
// consumed. Supports the PN_LOCAL character set extended with digits and
// '.', '-', '_', plus '%'-escapes.
func (p *Parser) readPNLocal() (string, error) {
	var b strings.Builder
	first := true
	for {
		c := p.src.Peek()
		switch {
		case c == '%':
			p.src.Advance()
			h1, h2 := p.src.Advance(), p.src.Advance()
			if !isHexDigit(h1) || !isHexDigit(h2) {
				return "", p.errf(ErrUnexpectedCharacter, "invalid %%-escape in prefixed name")
			}
			b.WriteRune('%')
			b.WriteRune(h1)
			b.WriteRune(h2)
			first = false
		case c == '\\' && isPnLocalEscapable(p.src.PeekAt(1)):
			p.src.Advance()
			b.WriteRune(p.src.Advance())
			first = false
		case !first && c == '.':
			if !isPnLocalAfterDot(p.src.PeekAt(1)) {
				return b.String(), nil
			}
			b.WriteRune(p.src.Advance())
			first = false
		case isPnCharsU(c), c == ':', (!first && (c == '-' || (c >= '0' && c <= '9'))):
			b.WriteRune(p.src.Advance())
			first = false
		default:
			return b.String(), nil
		}
	}
}

// isPnLocalAfterDot reports whether r may follow an interior '.' inside a
// PN_LOCAL body. A '.' not followed by one of these is the statement's own
// terminator, not part of the name, and must be left on the cursor.
func isPnLocalAfterDot(r rune) bool {
	return isPnChars(r) || r == '.' || r == ':' || r == '%' || r == '\\'
}

func isPnLocalEscapable(r rune) bool {
	switch r {
	case '_', '~', '.', '-', '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=', '/', '?', '#', '@', '%':
		return true
	default:
		return false
	}
}

// readBlankNodeLabel reads a blank-node label body, "_:" already consumed.
func (p *Parser) readBlankNodeLabel() (string, error) {
	var b strings.Builder
	first := true
	for {
		c := p.src.Peek()
		if first && !isPnCharsU(c) && !(c >= '0' && c <= '9') {
			return "", p.errf(ErrUnexpectedCharacter, "expected a blank node label")
		}
		if !first && c == '.' {
			if !isBlankNodeAfterDot(p.src.PeekAt(1)) {
				break
			}
			b.WriteRune(p.src.Advance())
			first = false
			continue
		}
		if !first && !isPnChars(c) {
			break
		}
		b.WriteRune(p.src.Advance())
		first = false
	}
	return b.String(), nil
}

// isBlankNodeAfterDot reports whether r may follow an interior '.' inside a
// blank-node label body, for the same reason isPnLocalAfterDot exists.
func isBlankNodeAfterDot(r rune) bool {
	return isPnChars(r) || r == '.'
}

// readStringLiteral reads a single-quoted string body up to the matching
// unescaped quote, the opening quote character already consumed.
func (p *Parser) readStringLiteral(quote rune) (string, error) {
	var b strings.Builder
	for {
		c := p.src.Peek()
		switch {
		case c == eof:
			return "", p.errf(ErrUnexpectedEOF, "unterminated string literal")
		case c == quote:
			p.src.Advance()
			return b.String(), nil
		case c == '\n':
			return "", p.errf(ErrUnexpectedCharacter, "newline in single-quoted string literal")
		case c == '\\':
			p.src.Advance()
			esc := p.src.Advance()
			switch esc {
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			case '\'':
				b.WriteByte('\'')
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 'u':
				r, err := p.readUnicodeEscape(false)
				if err != nil {
					return "", err
				}
				b.WriteRune(r)
			case 'U':
				r, err := p.readUnicodeEscape(true)
				if err != nil {
					return "", err
				}
				b.WriteRune(r)
			default:
				return "", p.errf(ErrInvalidIRI, "invalid escape sequence %q in string literal", esc)
			}
		default:
			b.WriteRune(p.src.Advance())
		}
	}
}

// readLangTag reads a language tag body, the '@' already consumed.
func (p *Parser) readLangTag() (string, error) {
	var b strings.Builder
	for {
		c := p.src.Peek()
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (b.Len() > 0 && (c == '-' || c >= '0' && c <= '9')) {
			b.WriteRune(p.src.Advance())
			continue
		}
		break
	}
	if b.Len() == 0 {
		return "", p.errf(ErrUnexpectedCharacter, "expected a language tag after '@'")
	}
	return b.String(), nil
}

// readNumericLiteral reads [+-]?\d+(\.\d+)?([eE][+-]?\d+)? and classifies
// it as xsd:integer, xsd:decimal, or xsd:double.
func (p *Parser) readNumericLiteral() (*Literal, error) {
	var b strings.Builder
	isDouble := false
	isDecimal := false

	if c := p.src.Peek(); c == '+' || c == '-' {
		b.WriteRune(p.src.Advance())
	}
	digitsBefore := 0
	for isDigit(p.src.Peek()) {
		b.WriteRune(p.src.Advance())
		digitsBefore++
	}
	if p.src.Peek() == '.' && isDigit(p.src.PeekAt(1)) {
		isDecimal = true
		b.WriteRune(p.src.Advance())
		for isDigit(p.src.Peek()) {
			b.WriteRune(p.src.Advance())
		}
	}
	if digitsBefore == 0 && !isDecimal {
		return nil, p.errf(ErrUnexpectedCharacter, "expected a numeric literal")
	}
	if c := p.src.Peek(); c == 'e' || c == 'E' {
		isDouble = true
		b.WriteRune(p.src.Advance())
		if c := p.src.Peek(); c == '+' || c == '-' {
			b.WriteRune(p.src.Advance())
		}
		for isDigit(p.src.Peek()) {
			b.WriteRune(p.src.Advance())
		}
	}

	lexical := b.String()
	switch {
	case isDouble:
		return NewTypedLiteral(lexical, XSDDouble), nil
	case isDecimal:
		return NewTypedLiteral(lexical, XSDDecimal), nil
	default:
		return NewTypedLiteral(lexical, XSDInteger), nil
	}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// matchWord consumes word if the upcoming characters spell it exactly and
// are not themselves followed by another PN_CHARS character (so "truest"
// does not match "true").
func (p *Parser) matchWord(word string) bool {
	for i, want := range word {
		if p.src.PeekAt(i) != want {
			return false
		}
	}
	if isPnChars(p.src.PeekAt(len([]rune(word)))) {
		return false
	}
	for range word {
		p.src.Advance()
	}
	return true
}
