package simd

import (
	"bytes"
	"math/rand/v2"
	"testing"
)

func TestMemmemBasic(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		want     int
	}{
		{"empty needle", "abc", "", 0},
		{"empty both", "", "", 0},
		{"empty haystack", "", "a", -1},
		{"needle longer", "ab", "abc", -1},
		{"single byte", "main.go", ".", 4},
		{"whole", "main.go", "main.go", 0},
		{"suffix", "cmd/tool/main.go", ".go", 13},
		{"middle", "src/cmd/main.go", "main", 8},
		{"repeated prefix", "aaaaaabaaaa", "aab", 4},
		{"rare byte at start", "xxQxxQab", "Qab", 5},
		{"missing", "hello world", "xyz", -1},
		{"overlap", "abababc", "ababc", 2},
		{"at end", "0123456789_test.go", "_test.go", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Memmem([]byte(tt.haystack), []byte(tt.needle)); got != tt.want {
				t.Errorf("Memmem(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
		})
	}
}

func TestMemmemMatchesIndex(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	const alphabet = "ab/."
	randBytes := func(n int) []byte {
		b := make([]byte, n)
		for i := range b {
			b[i] = alphabet[r.IntN(len(alphabet))]
		}
		return b
	}

	for i := 0; i < 5000; i++ {
		haystack := randBytes(r.IntN(40))
		needle := randBytes(r.IntN(6))
		if got, want := Memmem(haystack, needle), bytes.Index(haystack, needle); got != want {
			t.Fatalf("Memmem(%q, %q) = %d, want %d", haystack, needle, got, want)
		}
	}
}

func BenchmarkMemmem(b *testing.B) {
	haystack := bytes.Repeat([]byte("vendor/github.com/pkg/"), 32)
	haystack = append(haystack, "_test.go"...)
	needle := []byte("_test.go")
	b.SetBytes(int64(len(haystack)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Memmem(haystack, needle)
	}
}

func FuzzMemmem(f *testing.F) {
	f.Add([]byte("hello world"), []byte("world"))
	f.Add([]byte("aaaa"), []byte("aa"))
	f.Add([]byte(""), []byte(""))

	f.Fuzz(func(t *testing.T, haystack, needle []byte) {
		if got, want := Memmem(haystack, needle), bytes.Index(haystack, needle); got != want {
			t.Errorf("Memmem(%q, %q) = %d, want %d", haystack, needle, got, want)
		}
	})
}
