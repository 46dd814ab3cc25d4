// Package syntax parses fnmatch-style glob patterns into tokens.
//
// Supported syntax:
//
//	?        any single byte
//	*        any sequence of bytes, including the empty one
//	[abc]    any byte listed
//	[a-z]    any byte in the range (bounds are swapped if reversed)
//	[!abc]   any byte not listed
//	\c       the byte c, literally
//
// Inside brackets a ']' directly after '[' or '[!' is a member, a '-' at the
// start or end of the class is a member, and '\c' is the member c. There is
// no path separator handling: '/' is an ordinary byte. Patterns are bytes,
// not runes.
//
// The parser knows nothing about automata; it only produces tokens in the
// order the pattern lists them.
package syntax

import (
	"strings"
)

// TokenKind identifies what a Token matches.
type TokenKind uint8

const (
	// TokenLiteral matches exactly one given byte.
	TokenLiteral TokenKind = iota

	// TokenAnySingle matches any one byte (glob '?').
	TokenAnySingle

	// TokenAnyMultiple matches zero or more bytes (glob '*').
	TokenAnyMultiple

	// TokenClass matches one byte from a bracket expression.
	TokenClass
)

// String returns the kind name.
func (k TokenKind) String() string {
	switch k {
	case TokenLiteral:
		return "Literal"
	case TokenAnySingle:
		return "AnySingle"
	case TokenAnyMultiple:
		return "AnyMultiple"
	case TokenClass:
		return "Class"
	default:
		return "Unknown"
	}
}

// ClassItem is one member of a bracket expression: the single byte Lo when
// Lo == Hi, otherwise the range written as Lo-Hi. Hi may be less than Lo.
type ClassItem struct {
	Lo, Hi byte
}

// IsRange reports whether the item was written as a range.
func (it ClassItem) IsRange() bool {
	return it.Lo != it.Hi
}

// Token is one element of a parsed glob pattern.
type Token struct {
	Kind TokenKind

	// Byte is the matched byte for TokenLiteral.
	Byte byte

	// Negated and Items describe a TokenClass.
	Negated bool
	Items   []ClassItem
}

// Literal returns a token matching c.
func Literal(c byte) Token {
	return Token{Kind: TokenLiteral, Byte: c}
}

// AnySingle returns a '?' token.
func AnySingle() Token {
	return Token{Kind: TokenAnySingle}
}

// AnyMultiple returns a '*' token.
func AnyMultiple() Token {
	return Token{Kind: TokenAnyMultiple}
}

// Class returns a bracket expression token.
func Class(negated bool, items ...ClassItem) Token {
	return Token{Kind: TokenClass, Negated: negated, Items: items}
}

// IsWildcard reports whether t matches more than one distinct byte string.
func (t Token) IsWildcard() bool {
	return t.Kind != TokenLiteral
}

// Equal reports whether t and o are the same token.
func (t Token) Equal(o Token) bool {
	if t.Kind != o.Kind || t.Byte != o.Byte || t.Negated != o.Negated || len(t.Items) != len(o.Items) {
		return false
	}
	for i := range t.Items {
		if t.Items[i] != o.Items[i] {
			return false
		}
	}
	return true
}

// String renders t back to glob syntax. Parsing the result yields t again.
func (t Token) String() string {
	var sb strings.Builder
	t.write(&sb)
	return sb.String()
}

func (t Token) write(sb *strings.Builder) {
	switch t.Kind {
	case TokenLiteral:
		if isMeta(t.Byte) {
			sb.WriteByte('\\')
		}
		sb.WriteByte(t.Byte)
	case TokenAnySingle:
		sb.WriteByte('?')
	case TokenAnyMultiple:
		sb.WriteByte('*')
	case TokenClass:
		sb.WriteByte('[')
		if t.Negated {
			sb.WriteByte('!')
		}
		for _, it := range t.Items {
			writeClassByte(sb, it.Lo)
			if it.IsRange() {
				sb.WriteByte('-')
				writeClassByte(sb, it.Hi)
			}
		}
		sb.WriteByte(']')
	}
}

// writeClassByte escapes the bytes that would otherwise change the meaning of
// a bracket expression.
func writeClassByte(sb *strings.Builder, c byte) {
	switch c {
	case ']', '\\', '-', '!':
		sb.WriteByte('\\')
	}
	sb.WriteByte(c)
}

// String renders a token sequence back to glob syntax.
func String(tokens []Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		t.write(&sb)
	}
	return sb.String()
}

func isMeta(c byte) bool {
	switch c {
	case '\\', '?', '*', '[':
		return true
	}
	return false
}

// QuoteMeta escapes every glob metacharacter in s. The returned pattern
// matches exactly the string s.
func QuoteMeta(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isMeta(s[i]) {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
