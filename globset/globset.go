// Package globset matches a name against many glob patterns at once.
//
// Each pattern is compiled on its own, and the set adds one shared
// prefilter: the longest literal every match of a pattern must contain is
// fed to an Aho-Corasick automaton. One pass of the automaton over a name
// rules out every pattern whose literal cannot occur in it, so large sets of
// patterns like "*.go", "*_test.go" and "vendor/*" mostly skip their DFAs.
//
// Example:
//
//	b := globset.NewBuilder()
//	_ = b.Add("*.go")
//	_ = b.Add("*_test.go")
//	_ = b.Add("docs/*")
//	set, err := b.Build()
//	if err != nil {
//	    return err
//	}
//	set.Matches([]byte("glob_test.go")) // [0 1]
package globset

import (
	"fmt"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/coreglob/meta"
	"github.com/coregx/coreglob/simd"
)

// Builder accumulates patterns for a Set.
// Patterns are compiled as they are added.
type Builder struct {
	engines []*meta.Engine
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add compiles pattern with the default configuration and appends it.
// The pattern's index in the Set is the number of patterns added before it.
func (b *Builder) Add(pattern string) error {
	return b.AddWithConfig(pattern, meta.DefaultConfig())
}

// AddWithConfig is like Add with a custom configuration.
// A pattern that fails to compile is not added.
func (b *Builder) AddWithConfig(pattern string, config meta.Config) error {
	e, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return err
	}
	b.engines = append(b.engines, e)
	return nil
}

// Build finalizes the set. The builder can keep being used afterwards;
// later additions do not affect sets already built.
func (b *Builder) Build() (*Set, error) {
	s := &Set{
		engines:  append([]*meta.Engine(nil), b.engines...),
		literals: make([][]byte, len(b.engines)),
	}

	ac := ahocorasick.NewBuilder()
	seen := make(map[string]bool)
	for i, e := range s.engines {
		lit, ok := e.Literals().Inner.Longest()
		if !ok {
			continue
		}
		s.literals[i] = lit.Bytes
		if key := string(lit.Bytes); !seen[key] {
			seen[key] = true
			ac.AddPattern(lit.Bytes)
		}
	}
	if len(seen) == 0 {
		return s, nil
	}

	auto, err := ac.Build()
	if err != nil {
		return nil, fmt.Errorf("globset: building literal automaton: %w", err)
	}
	s.auto = auto
	return s, nil
}

// Set is a compiled collection of glob patterns.
// It is immutable and safe for concurrent use.
type Set struct {
	engines []*meta.Engine

	// literals[i] must occur in every name pattern i matches; nil if the
	// pattern has no literal.
	literals [][]byte

	// auto finds the literals; nil if no pattern has one.
	auto *ahocorasick.Automaton
}

// Len returns the number of patterns in the set.
func (s *Set) Len() int {
	return len(s.engines)
}

// Patterns returns the patterns in index order.
func (s *Set) Patterns() []string {
	out := make([]string, len(s.engines))
	for i, e := range s.engines {
		out[i] = e.Pattern()
	}
	return out
}

// Matches returns the indices of all patterns matching name, ascending.
// Returns nil if none matches.
func (s *Set) Matches(name []byte) []int {
	var out []int
	s.match(name, func(i int) bool {
		out = append(out, i)
		return true
	})
	return out
}

// MatchesString is like Matches but takes a string.
func (s *Set) MatchesString(name string) []int {
	return s.Matches([]byte(name))
}

// IsMatch reports whether any pattern matches name.
func (s *Set) IsMatch(name []byte) bool {
	found := false
	s.match(name, func(int) bool {
		found = true
		return false
	})
	return found
}

// MatchString is like IsMatch but takes a string.
func (s *Set) MatchString(name string) bool {
	return s.IsMatch([]byte(name))
}

// match calls yield with the index of each matching pattern in ascending
// order until yield returns false.
func (s *Set) match(name []byte, yield func(int) bool) {
	lits := s.scan(name)
	for i, e := range s.engines {
		if lit := s.literals[i]; lit != nil && !lits.contains(name, lit) {
			continue
		}
		if e.IsMatch(name) && !yield(i) {
			return
		}
	}
}

// literalScan records which literals the automaton found in a name.
type literalScan struct {
	// none is true when the automaton found no literal at all.
	none bool

	// reported holds the literals the scan saw.
	reported map[string]bool
}

// scan runs the automaton over name once.
//
// The automaton reports one leftmost literal per start position, so a
// literal can be present without being reported when a longer one starts at
// the same place. contains falls back to a substring search for those.
func (s *Set) scan(name []byte) literalScan {
	if s.auto == nil {
		return literalScan{}
	}
	if !s.auto.IsMatch(name) {
		return literalScan{none: true}
	}

	reported := make(map[string]bool)
	for at := 0; at < len(name); {
		m := s.auto.Find(name, at)
		if m == nil {
			break
		}
		reported[string(name[m.Start:m.End])] = true
		at = m.Start + 1
	}
	return literalScan{reported: reported}
}

func (ls literalScan) contains(name, lit []byte) bool {
	if ls.none {
		return false
	}
	if ls.reported[string(lit)] {
		return true
	}
	return simd.Memmem(name, lit) >= 0
}
