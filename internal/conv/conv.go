// Package conv provides checked integer conversions for automaton state IDs.
//
// Arena indices are ints while state IDs are uint32. Overflow means an automaton
// grew past what an ID can address, which is a programming error, so these
// helpers panic instead of wrapping silently.
package conv

import "math"

// IntToUint32 converts an arena index to a uint32 state ID.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Compare as uint so 32-bit platforms do not overflow on math.MaxUint32.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
