// Package prefilter provides cheap rejection tests that run before the DFA.
//
// A prefilter never decides that a name matches on its own unless it is
// complete; its job is to say "this name cannot match" as fast as possible.
// The tests are built from the literal structure of a glob:
//   - Length: a name shorter than the pattern's minimum match length, or of
//     the wrong length for a pattern without '*', cannot match
//   - Anchored literal: the name must start with the prefix and end with the
//     suffix of the pattern
//   - Inner literal: the name must contain the longest literal found between
//     wildcards (simd.Memchr or simd.Memmem)
//
// Example usage:
//
//	info := literal.Extract(syntax.MustParse("src/*_test.go"))
//	pf := prefilter.NewBuilder(info).Build()
//	pf.Reject([]byte("docs/README.md")) // true: wrong prefix
package prefilter

import (
	"bytes"
	"fmt"

	"github.com/coregx/coreglob/literal"
	"github.com/coregx/coreglob/simd"
)

// Prefilter quickly rules out names that cannot match a pattern.
//
// Key methods:
//   - Reject: reports that no match is possible
//   - IsComplete: indicates that passing the prefilter is itself a match
//   - HeapBytes: returns memory usage for profiling
type Prefilter interface {
	// Reject returns true if haystack cannot match the pattern.
	//
	// A false result only means the name is a candidate: the caller must
	// confirm it with the DFA unless IsComplete() is true.
	Reject(haystack []byte) bool

	// IsComplete returns true if every name the prefilter does not reject
	// matches the pattern. This is the case for patterns made of literals
	// only and for patterns of the form prefix*suffix.
	IsComplete() bool

	// HeapBytes returns the number of bytes of heap memory used by this prefilter.
	HeapBytes() int
}

// Builder constructs the prefilter for a pattern from its literal Info.
//
// Selection, cheapest test first:
//  1. Length check, unless every length is possible ("*")
//  2. Prefix and suffix check, when the pattern starts or ends with a literal
//  3. Substring search for the longest literal strictly between wildcards
//
// The chosen tests are chained and all must pass.
type Builder struct {
	info literal.Info
}

// NewBuilder creates a new prefilter builder from a pattern's literal Info.
func NewBuilder(info literal.Info) *Builder {
	return &Builder{info: info}
}

// Build constructs the prefilter.
//
// Returns nil if no test can reject anything, as for "*" or "*?*" patterns
// that only bound the length from below by zero.
func (b *Builder) Build() Prefilter {
	info := b.info
	var filters []Prefilter

	if info.MinLen > 0 || !info.Unbounded {
		filters = append(filters, &lengthPrefilter{
			minLen:  info.MinLen,
			bounded: !info.Unbounded,
		})
	}

	if len(info.Prefix) > 0 || len(info.Suffix) > 0 {
		ap := &anchoredPrefilter{
			prefix: info.Prefix,
			suffix: info.Suffix,
		}
		if info.Exact {
			// Prefix and Suffix are both the whole pattern.
			ap.suffix = nil
		}
		filters = append(filters, ap)
	}

	if needle := innerLiteral(info); len(needle) == 1 {
		filters = append(filters, newMemchrPrefilter(needle[0]))
	} else if len(needle) > 1 {
		filters = append(filters, newMemmemPrefilter(needle))
	}

	complete := info.Exact || info.IsAnchoredLiteral() || info.IsWildcardOnly()
	switch len(filters) {
	case 0:
		return nil
	case 1:
		switch f := filters[0].(type) {
		case *lengthPrefilter:
			f.complete = complete
		case *anchoredPrefilter:
			f.complete = complete
		}
		return filters[0]
	default:
		return &chainPrefilter{filters: filters, complete: complete}
	}
}

// innerLiteral returns the longest literal not already covered by the
// prefix or suffix check, or nil.
func innerLiteral(info literal.Info) []byte {
	if info.Exact {
		return nil
	}
	lits := info.Inner
	lo, hi := 0, lits.Len()
	if len(info.Prefix) > 0 {
		lo++
	}
	if len(info.Suffix) > 0 {
		hi--
	}
	var best []byte
	for i := lo; i < hi; i++ {
		if b := lits.Get(i).Bytes; len(b) > len(best) {
			best = b
		}
	}
	return best
}

// lengthPrefilter rejects names of impossible length.
type lengthPrefilter struct {
	minLen   int
	bounded  bool
	complete bool
}

func (p *lengthPrefilter) Reject(haystack []byte) bool {
	if p.bounded {
		return len(haystack) != p.minLen
	}
	return len(haystack) < p.minLen
}

func (p *lengthPrefilter) IsComplete() bool { return p.complete }
func (p *lengthPrefilter) HeapBytes() int   { return 0 }

func (p *lengthPrefilter) String() string {
	if p.bounded {
		return fmt.Sprintf("length(== %d)", p.minLen)
	}
	return fmt.Sprintf("length(>= %d)", p.minLen)
}

// anchoredPrefilter checks the literal prefix and suffix.
type anchoredPrefilter struct {
	prefix   []byte
	suffix   []byte
	complete bool
}

func (p *anchoredPrefilter) Reject(haystack []byte) bool {
	if len(haystack) < len(p.prefix)+len(p.suffix) {
		return true
	}
	return !bytes.HasPrefix(haystack, p.prefix) || !bytes.HasSuffix(haystack, p.suffix)
}

func (p *anchoredPrefilter) IsComplete() bool { return p.complete }

func (p *anchoredPrefilter) HeapBytes() int {
	return len(p.prefix) + len(p.suffix)
}

func (p *anchoredPrefilter) String() string {
	return fmt.Sprintf("anchored(%q, %q)", p.prefix, p.suffix)
}

// memchrPrefilter wraps simd.Memchr as a Prefilter.
// It requires a single byte that occurs between two wildcards.
type memchrPrefilter struct {
	needle byte
}

func newMemchrPrefilter(needle byte) Prefilter {
	return &memchrPrefilter{needle: needle}
}

// Reject implements Prefilter.Reject using simd.Memchr.
func (p *memchrPrefilter) Reject(haystack []byte) bool {
	return simd.Memchr(haystack, p.needle) == -1
}

func (p *memchrPrefilter) IsComplete() bool { return false }
func (p *memchrPrefilter) HeapBytes() int   { return 0 }

func (p *memchrPrefilter) String() string {
	return fmt.Sprintf("memchr(%q)", p.needle)
}

// memmemPrefilter wraps simd.Memmem as a Prefilter.
type memmemPrefilter struct {
	needle []byte
}

func newMemmemPrefilter(needle []byte) Prefilter {
	return &memmemPrefilter{needle: needle}
}

// Reject implements Prefilter.Reject using simd.Memmem.
func (p *memmemPrefilter) Reject(haystack []byte) bool {
	return simd.Memmem(haystack, p.needle) == -1
}

func (p *memmemPrefilter) IsComplete() bool { return false }
func (p *memmemPrefilter) HeapBytes() int   { return len(p.needle) }

func (p *memmemPrefilter) String() string {
	return fmt.Sprintf("memmem(%q)", p.needle)
}

// chainPrefilter rejects when any of its filters rejects.
type chainPrefilter struct {
	filters  []Prefilter
	complete bool
}

func (p *chainPrefilter) Reject(haystack []byte) bool {
	for _, f := range p.filters {
		if f.Reject(haystack) {
			return true
		}
	}
	return false
}

func (p *chainPrefilter) IsComplete() bool { return p.complete }

func (p *chainPrefilter) HeapBytes() int {
	total := 0
	for _, f := range p.filters {
		total += f.HeapBytes()
	}
	return total
}

func (p *chainPrefilter) String() string {
	return fmt.Sprint(p.filters)
}
