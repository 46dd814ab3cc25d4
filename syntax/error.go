package syntax

import (
	"fmt"
	"strconv"
)

// ErrorKind classifies parse errors.
type ErrorKind uint8

const (
	// UnterminatedEscape means the pattern ends with a lone backslash.
	UnterminatedEscape ErrorKind = iota

	// UnterminatedClass means a bracket expression has no closing ']'.
	UnterminatedClass
)

// String returns the message used in error text.
func (k ErrorKind) String() string {
	switch k {
	case UnterminatedEscape:
		return "escape at end of string"
	case UnterminatedClass:
		return "unterminated bracket expression"
	default:
		return fmt.Sprintf("unknown parse error (%d)", k)
	}
}

// Sentinel errors for errors.Is. They match any *ParseError of the same kind.
var (
	ErrUnterminatedEscape = &ParseError{Kind: UnterminatedEscape, Offset: -1}
	ErrUnterminatedClass  = &ParseError{Kind: UnterminatedClass, Offset: -1}
)

// ParseError describes a malformed pattern.
type ParseError struct {
	Kind ErrorKind

	// Pattern is the full pattern being parsed.
	Pattern string

	// Offset is the byte offset of the offending '\' or '['.
	Offset int
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Offset < 0 {
		return "glob: " + e.Kind.String()
	}
	return fmt.Sprintf("glob: %s at offset %d in %s", e.Kind, e.Offset, quote(e.Pattern))
}

// Is reports whether target is a *ParseError of the same kind.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func quote(s string) string {
	return strconv.Quote(s)
}
