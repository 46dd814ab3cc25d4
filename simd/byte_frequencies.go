package simd

// byteRanks holds how common each byte is in file names and paths.
// Lower rank = rarer byte (better candidate for Memchr).
var byteRanks [256]byte

// rankTiers lists bytes from most to least common in names and paths.
// Bytes not listed keep rank 0: control bytes and non-ASCII bytes are rare
// in names, and '*', '?' or '[' only appear when escaped.
var rankTiers = []struct {
	rank  byte
	bytes string
}{
	{250, "/.aeinorst"},
	{200, "_-cdglmpu0123456789"},
	{150, "bfhkvwxy"},
	{100, "ACDEFGILMNPRST jz"},
	{50, "BHJKOQUVWXYZq~@#$%&+=,;()[]{}!'^`"},
}

func init() {
	for _, tier := range rankTiers {
		for i := 0; i < len(tier.bytes); i++ {
			byteRanks[tier.bytes[i]] = tier.rank
		}
	}
}

// ByteRank returns the frequency rank of a byte.
// Lower values indicate rarer bytes (better for search optimization).
func ByteRank(b byte) byte {
	return byteRanks[b]
}

// SelectRareByte returns the rarest byte in needle and its index.
// Ties go to the later position, since name suffixes vary more than prefixes.
// Returns (0, -1) for an empty needle.
func SelectRareByte(needle []byte) (rareByte byte, index int) {
	if len(needle) == 0 {
		return 0, -1
	}
	index = len(needle) - 1
	for i := index - 1; i >= 0; i-- {
		if byteRanks[needle[i]] < byteRanks[needle[index]] {
			index = i
		}
	}
	return needle[index], index
}
