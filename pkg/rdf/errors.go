package rdf

import (
	"errors"
	"fmt"
)

// ErrorCode classifies why a parse failed.
type ErrorCode int

const (
	_ ErrorCode = iota
	ErrUnexpectedCharacter
	ErrUnexpectedEOF
	ErrInvalidIRI
	ErrInvalidUnicodeEscape
	ErrUnknownPrefix
	ErrBadDirective
	ErrMissingTerminator
	ErrInternalInvariant
)

func (c ErrorCode) String() string {
	switch c {
	case ErrUnexpectedCharacter:
		return "UnexpectedCharacter"
	case ErrUnexpectedEOF:
		return "UnexpectedEOF"
	case ErrInvalidIRI:
		return "InvalidIRI"
	case ErrInvalidUnicodeEscape:
		return "InvalidUnicodeEscape"
	case ErrUnknownPrefix:
		return "UnknownPrefix"
	case ErrBadDirective:
		return "BadDirective"
	case ErrMissingTerminator:
		return "MissingTerminator"
	case ErrInternalInvariant:
		return "InternalInvariant"
	default:
		return "Unknown"
	}
}

// maxSnippet bounds the look-ahead excerpt attached to every ParseError, per
// the diagnostic contract: callers get at most this many characters of
// context following the failure point.
const maxSnippet = 80

// ParseError is the single structured error type the parser returns. It
// carries enough context for a caller to locate the problem without
// re-parsing: the state the driver was in, how deep its stack was, the
// position of the offending character, and a bounded look-ahead excerpt.
type ParseError struct {
	Code       ErrorCode
	State      string
	StackDepth int
	Line       int
	Column     int
	Offset     int64
	Snippet    string
	Detail     string
	Err        error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s at line %d, column %d (state=%s, stack depth=%d)",
		e.Code, e.Line, e.Column, e.State, e.StackDepth)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Snippet != "" {
		msg += fmt.Sprintf("\n  near: %q", e.Snippet)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(" (%v)", e.Err)
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// Code returns the ErrorCode an error was built with, or 0 if err is not (and
// does not wrap) a *ParseError.
func Code(err error) ErrorCode {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return 0
}

// truncate bounds s to maxSnippet runes, the excerpt every lexical reader
// and the driver itself attach to a failure.
func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxSnippet {
		return string(r)
	}
	return string(r[:maxSnippet])
}
