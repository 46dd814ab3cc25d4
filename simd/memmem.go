package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// This is equivalent to bytes.Index. It picks the rarest byte of needle (by
// ByteRank), finds candidates for it with Memchr and verifies each candidate.
// For the short, distinctive literals found in glob patterns this skips most
// of the haystack without comparing it.
//
// Example:
//
//	simd.Memmem([]byte("src/cmd/main.go"), []byte("main")) // 8
func Memmem(haystack, needle []byte) int {
	needleLen := len(needle)
	haystackLen := len(haystack)

	// Empty needle matches at start (mimics bytes.Index behavior)
	if needleLen == 0 {
		return 0
	}
	if needleLen > haystackLen {
		return -1
	}
	if needleLen == 1 {
		return Memchr(haystack, needle[0])
	}

	rareByte, rareIdx := SelectRareByte(needle)

	// A match starting at p puts the rare byte at p+rareIdx, so only the
	// window [rareIdx, haystackLen-needleLen+rareIdx] can hold candidates.
	searchStart := rareIdx
	searchEnd := haystackLen - needleLen + rareIdx + 1
	for searchStart < searchEnd {
		pos := Memchr(haystack[searchStart:searchEnd], rareByte)
		if pos == -1 {
			return -1
		}
		pos += searchStart

		start := pos - rareIdx
		if bytes.Equal(haystack[start:start+needleLen], needle) {
			return start
		}
		searchStart = pos + 1
	}
	return -1
}
