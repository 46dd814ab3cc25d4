// Package simd provides fast byte and substring search for glob prefilters.
//
// The searches are written in pure Go using SWAR (SIMD Within A Register):
// eight bytes are loaded into a uint64 and tested at once with bitwise
// arithmetic. That keeps the package portable while still scanning long
// names and paths several times faster than a byte loop.
package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// zeroBytes returns a word with the high bit set in every byte position of v
// that is zero. Positions above the first zero may be false positives, so
// only the lowest set bit is meaningful.
func zeroBytes(v uint64) uint64 {
	return (v - lo8) & ^v & hi8
}

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Algorithm:
//  1. Broadcast needle to every byte of a uint64
//  2. XOR each 8-byte chunk with it, turning matching bytes into 0x00
//  3. Detect a zero byte and take its position from the trailing zero count
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)

	// For small inputs, byte-by-byte is faster (no setup overhead)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := uint64(needle) * lo8
	i := 0
	for ; i+8 <= n; i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		if z := zeroBytes(chunk ^ mask); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}

	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}
