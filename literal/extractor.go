package literal

import (
	"github.com/coregx/coreglob/syntax"
)

// Info describes the literal structure of a parsed glob.
type Info struct {
	// Prefix holds the literal bytes before the first wildcard or class.
	// For a pattern without wildcards it is the whole pattern.
	Prefix []byte

	// Suffix holds the literal bytes after the last wildcard or class.
	// For a pattern without wildcards it is the whole pattern.
	Suffix []byte

	// Inner holds every maximal run of literal tokens, in pattern order.
	Inner *Seq

	// MinLen is the length of the shortest possible match: one byte per
	// token except '*'.
	MinLen int

	// Unbounded is true when the pattern contains '*', so matches can be
	// arbitrarily long. Otherwise every match is exactly MinLen bytes.
	Unbounded bool

	// Exact is true when the pattern consists of literals only.
	Exact bool

	// Stars counts runs of consecutive '*'.
	Stars int

	// Classes counts bracket expressions.
	Classes int
}

// IsAnchoredLiteral reports whether the pattern is exactly prefix*suffix:
// one run of '*' with only literal bytes around it. Such a pattern matches a
// name iff the name is long enough, starts with Prefix and ends with Suffix.
func (i *Info) IsAnchoredLiteral() bool {
	return i.Stars == 1 && len(i.Prefix)+len(i.Suffix) == i.MinLen
}

// IsWildcardOnly reports whether the pattern consists of '?' and '*' only,
// so that its matches are decided by length alone.
func (i *Info) IsWildcardOnly() bool {
	return i.Inner.IsEmpty() && i.Classes == 0
}

// Extract computes the literal Info of a token sequence.
//
// Examples:
//
//	"main.go"      → Prefix "main.go", Suffix "main.go", Exact
//	"*.go"         → Suffix ".go", Inner [".go"], MinLen 3
//	"src/*/a?.txt" → Prefix "src/", Suffix ".txt", Inner ["src/", "/a", ".txt"]
func Extract(tokens []syntax.Token) Info {
	info := Info{Exact: true}

	var run []byte
	flush := func() {
		if len(run) > 0 {
			info.Inner.literals = append(info.Inner.literals, NewLiteral(run, false))
			run = nil
		}
	}

	info.Inner = NewSeq()
	seenWildcard := false
	prevStar := false
	for _, tok := range tokens {
		if tok.Kind == syntax.TokenLiteral {
			run = append(run, tok.Byte)
			if !seenWildcard {
				info.Prefix = append(info.Prefix, tok.Byte)
			}
			info.MinLen++
			prevStar = false
			continue
		}

		flush()
		seenWildcard = true
		info.Exact = false
		if tok.Kind == syntax.TokenAnyMultiple {
			info.Unbounded = true
			if !prevStar {
				info.Stars++
			}
			prevStar = true
			continue
		}
		if tok.Kind == syntax.TokenClass {
			info.Classes++
		}
		info.MinLen++
		prevStar = false
	}

	// After the loop, run is the trailing literal run: the suffix.
	info.Suffix = append([]byte(nil), run...)
	flush()

	if info.Exact {
		for i := range info.Inner.literals {
			info.Inner.literals[i].Complete = true
		}
	}
	return info
}
