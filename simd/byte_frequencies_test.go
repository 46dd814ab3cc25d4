package simd

import "testing"

func TestByteRank(t *testing.T) {
	if ByteRank('/') <= ByteRank('Q') {
		t.Error("'/' should rank as more common than 'Q'")
	}
	if ByteRank('e') <= ByteRank('z') {
		t.Error("'e' should rank as more common than 'z'")
	}
	if ByteRank(0x00) != 0 || ByteRank(0xff) != 0 {
		t.Error("control and non-ASCII bytes should have rank 0")
	}
}

func TestSelectRareByte(t *testing.T) {
	tests := []struct {
		needle    string
		wantByte  byte
		wantIndex int
	}{
		{"", 0, -1},
		{"a", 'a', 0},
		{".go", 'g', 1},
		{"Qtest", 'Q', 0},
		// All equally common: the last one wins.
		{"aeio", 'o', 3},
		{"_test.go", 'g', 6},
	}
	for _, tt := range tests {
		b, idx := SelectRareByte([]byte(tt.needle))
		if b != tt.wantByte || idx != tt.wantIndex {
			t.Errorf("SelectRareByte(%q) = (%q, %d), want (%q, %d)", tt.needle, b, idx, tt.wantByte, tt.wantIndex)
		}
	}
}
