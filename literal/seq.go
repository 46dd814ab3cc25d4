// Package literal extracts the literal bytes a glob pattern requires.
//
// A glob like "*_test.go" can only match names that end in "_test.go", and
// "src/*/main.go" only names containing "src/" and "/main.go". Knowing these
// literals lets the engine reject most candidates with a length check or a
// substring search before it runs the DFA, and lets pure-literal patterns skip
// the automaton entirely.
//
// Key concepts:
//   - A Literal is a concrete byte sequence every match contains
//   - A Seq is a set of literals that must all occur in a match
//   - Info summarizes a pattern: prefix, suffix, inner literals and length bounds
package literal

// Literal represents a literal byte sequence extracted from a glob pattern.
// The Complete flag indicates whether this literal is the entire pattern
// (true) or just one required piece of it (false).
//
// Example:
//   - Pattern "Makefile" → Literal{[]byte("Makefile"), true}
//   - Pattern "*.go" → Literal{[]byte(".go"), false}
type Literal struct {
	// Bytes contains the actual literal byte sequence.
	Bytes []byte

	// Complete indicates whether this literal represents the entire match.
	// If true, byte equality with it decides a match on its own.
	Complete bool
}

// NewLiteral creates a new Literal from the given byte sequence and completeness flag.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{
		Bytes:    b,
		Complete: complete,
	}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a string representation of the literal for debugging purposes.
// Format: "literal{bytes, complete=true/false}"
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq is a set of literals that every match must contain.
//
// Unlike alternatives, the literals are conjunctive: a name missing any one of
// them cannot match. That makes any single literal a valid prefilter and the
// longest one usually the most selective.
type Seq struct {
	literals []Literal
}

// NewSeq creates a new sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{
		literals: lits,
	}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at the specified index.
// Panics if index is out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty returns true if the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// Longest returns the longest literal, preferring the earliest on ties.
// The second result is false for an empty sequence.
func (s *Seq) Longest() (Literal, bool) {
	if s.IsEmpty() {
		return Literal{}, false
	}
	best := s.literals[0]
	for _, lit := range s.literals[1:] {
		if lit.Len() > best.Len() {
			best = lit
		}
	}
	return best, true
}
