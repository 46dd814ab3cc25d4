// Package charset implements immutable sets of bytes used to label automaton
// arcs.
//
// A Set is either inclusive (it lists the bytes it accepts) or exclusive (it
// lists the bytes it rejects). Negated glob classes such as [!a] are therefore
// as cheap to represent as [a], and "any byte" is just the exclusive set with
// nothing listed. All combinators return new values; a Set is never modified.
//
// The representation is canonical: every set of accepted bytes has exactly one
// Set value, so == is semantic equality and a Set can be used as a map key.
package charset

import (
	"math/bits"
	"strconv"
	"strings"
)

// bitset is a 256-bit set of bytes. Bit b of word b/64 is set when byte b is
// listed.
type bitset [4]uint64

func (s *bitset) add(b byte) {
	s[b/64] |= 1 << (b % 64)
}

func (s bitset) has(b byte) bool {
	return s[b/64]&(1<<(b%64)) != 0
}

func (s bitset) count() int {
	return bits.OnesCount64(s[0]) + bits.OnesCount64(s[1]) +
		bits.OnesCount64(s[2]) + bits.OnesCount64(s[3])
}

func (s bitset) union(o bitset) bitset {
	return bitset{s[0] | o[0], s[1] | o[1], s[2] | o[2], s[3] | o[3]}
}

func (s bitset) intersect(o bitset) bitset {
	return bitset{s[0] & o[0], s[1] & o[1], s[2] & o[2], s[3] & o[3]}
}

func (s bitset) minus(o bitset) bitset {
	return bitset{s[0] &^ o[0], s[1] &^ o[1], s[2] &^ o[2], s[3] &^ o[3]}
}

func (s bitset) invert() bitset {
	return bitset{^s[0], ^s[1], ^s[2], ^s[3]}
}

// Set is an immutable predicate over the byte alphabet.
//
// The zero value is the empty set.
type Set struct {
	// exclusive reports that listed holds the rejected bytes rather than the
	// accepted ones.
	exclusive bool
	listed    bitset
}

// half is the listed-byte count at which both forms are equally long.
const half = 128

// newSet builds the canonical Set for the given form: the form listing fewer
// bytes wins, and a tie goes to the inclusive form.
func newSet(inclusive bool, listed bitset) Set {
	n := listed.count()
	if n > half || (n == half && !inclusive) {
		inclusive = !inclusive
		listed = listed.invert()
	}
	return Set{exclusive: !inclusive, listed: listed}
}

// Including returns the set of exactly the given bytes.
func Including(chars ...byte) Set {
	var bs bitset
	for _, c := range chars {
		bs.add(c)
	}
	return newSet(true, bs)
}

// IncludingString returns the set of the bytes of s.
func IncludingString(s string) Set {
	return Including([]byte(s)...)
}

// Excluding returns the set of every byte except the given ones.
func Excluding(chars ...byte) Set {
	var bs bitset
	for _, c := range chars {
		bs.add(c)
	}
	return newSet(false, bs)
}

// ExcludingString returns the set of every byte not in s.
func ExcludingString(s string) Set {
	return Excluding([]byte(s)...)
}

// Range returns the set of bytes in [lo, hi]. The bounds are swapped when
// hi < lo.
func Range(lo, hi byte) Set {
	if hi < lo {
		lo, hi = hi, lo
	}
	var bs bitset
	for c := int(lo); c <= int(hi); c++ {
		bs.add(byte(c))
	}
	return newSet(true, bs)
}

// Any returns the set of all 256 bytes.
func Any() Set {
	return Set{exclusive: true}
}

// None returns the empty set.
func None() Set {
	return Set{}
}

// Contains reports whether the set accepts c.
func (s Set) Contains(c byte) bool {
	return s.listed.has(c) != s.exclusive
}

// IsInclusive reports whether the set is stored as the list of accepted bytes.
func (s Set) IsInclusive() bool {
	return !s.exclusive
}

// Union returns the bytes accepted by s or o.
func (s Set) Union(o Set) Set {
	switch {
	case !s.exclusive && !o.exclusive:
		return newSet(true, s.listed.union(o.listed))
	case s.exclusive && o.exclusive:
		// Rejected by the union only if rejected by both.
		return newSet(false, s.listed.intersect(o.listed))
	case !s.exclusive:
		return newSet(false, o.listed.minus(s.listed))
	default:
		return newSet(false, s.listed.minus(o.listed))
	}
}

// Difference returns the bytes accepted by s and rejected by o.
func (s Set) Difference(o Set) Set {
	switch {
	case !s.exclusive && !o.exclusive:
		return newSet(true, s.listed.minus(o.listed))
	case s.exclusive && o.exclusive:
		return newSet(true, o.listed.minus(s.listed))
	case !s.exclusive:
		return newSet(true, s.listed.intersect(o.listed))
	default:
		return newSet(false, s.listed.union(o.listed))
	}
}

// Intersection returns the bytes accepted by both s and o.
func (s Set) Intersection(o Set) Set {
	return s.Difference(s.Difference(o))
}

// Complement returns the bytes s rejects.
func (s Set) Complement() Set {
	return Any().Difference(s)
}

// All reports whether s accepts every byte.
func (s Set) All() bool {
	return s.exclusive && s.listed == bitset{}
}

// Empty reports whether s accepts no byte.
func (s Set) Empty() bool {
	return !s.exclusive && s.listed == bitset{}
}

// Disjoint reports whether s and o share no byte.
func (s Set) Disjoint(o Set) bool {
	return s.Intersection(o).Empty()
}

// Intersects reports whether s and o share at least one byte.
func (s Set) Intersects(o Set) bool {
	return !s.Disjoint(o)
}

// SubsetOf reports whether every byte of s is also in o.
func (s Set) SubsetOf(o Set) bool {
	return s.Difference(o).Empty()
}

// Equal reports whether s and o accept the same bytes.
func (s Set) Equal(o Set) bool {
	return s == o
}

// Len returns the number of accepted bytes.
func (s Set) Len() int {
	if s.exclusive {
		return 256 - s.listed.count()
	}
	return s.listed.count()
}

// Bytes returns the accepted bytes in ascending order.
func (s Set) Bytes() []byte {
	out := make([]byte, 0, s.Len())
	for c := 0; c < 256; c++ {
		if s.Contains(byte(c)) {
			out = append(out, byte(c))
		}
	}
	return out
}

// Min returns the smallest accepted byte. ok is false for the empty set.
func (s Set) Min() (c byte, ok bool) {
	for i := 0; i < 256; i++ {
		if s.Contains(byte(i)) {
			return byte(i), true
		}
	}
	return 0, false
}

// Compare orders sets: inclusive sets sort before exclusive ones, then sets
// compare by their listed bytes. It returns 0 exactly when a == b.
func Compare(a, b Set) int {
	if a.exclusive != b.exclusive {
		if !a.exclusive {
			return -1
		}
		return 1
	}
	for i := range a.listed {
		switch {
		case a.listed[i] < b.listed[i]:
			return -1
		case a.listed[i] > b.listed[i]:
			return 1
		}
	}
	return 0
}

// UnionAll returns the union of sets.
func UnionAll(sets ...Set) Set {
	u := None()
	for _, s := range sets {
		u = u.Union(s)
	}
	return u
}

// Label returns a short human-readable form: "ALL", "NONE", the quoted
// accepted bytes, or "NOT: " followed by the quoted rejected bytes.
func (s Set) Label() string {
	if s.listed == (bitset{}) {
		if s.exclusive {
			return "ALL"
		}
		return "NONE"
	}

	var sb strings.Builder
	if s.exclusive {
		sb.WriteString("NOT: ")
	}
	sb.WriteByte('"')
	for c := 0; c < 256; c++ {
		if s.listed.has(byte(c)) {
			writeLabelByte(&sb, byte(c))
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func writeLabelByte(sb *strings.Builder, c byte) {
	switch {
	case c == '"' || c == '\\':
		sb.WriteByte('\\')
		sb.WriteByte(c)
	case c >= 0x20 && c < 0x7f:
		sb.WriteByte(c)
	default:
		sb.WriteString(`\x`)
		if c < 0x10 {
			sb.WriteByte('0')
		}
		sb.WriteString(strconv.FormatUint(uint64(c), 16))
	}
}

// String implements fmt.Stringer. It is the same as Label.
func (s Set) String() string {
	return s.Label()
}
