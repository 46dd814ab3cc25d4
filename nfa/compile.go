package nfa

import (
	"github.com/coregx/coreglob/charset"
	"github.com/coregx/coreglob/syntax"
)

// Compile parses a glob pattern and builds its NFA.
// The only possible error is a *CompileError wrapping a *syntax.ParseError.
func Compile(pattern string) (*NFA, error) {
	tokens, err := syntax.Parse(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	return Build(tokens), nil
}

// Build constructs the NFA for a token sequence in one left-to-right pass.
//
// Each byte-consuming token adds one state reached from every state of the
// current frontier, where the frontier is the set of states in which the
// prefix matched so far may end. A '*' adds a state with an ALL self-loop but
// keeps the states before it in the frontier, so the following token can be
// reached with or without consuming anything for the star. Runs of '*' are
// collapsed. When the tokens run out, every frontier state accepts.
//
// With no tokens the NFA is a single accepting start state without arcs, which
// matches only the empty string.
func Build(tokens []syntax.Token) *NFA {
	b := NewBuilderWithCapacity(len(tokens) + 1)
	start := b.AddState()
	frontier := []StateID{start}

	afterStar := false
	for _, tok := range tokens {
		if tok.Kind == syntax.TokenAnyMultiple {
			if afterStar {
				continue
			}
			afterStar = true

			next := b.AddState()
			for _, f := range frontier {
				b.addArc(f, charset.Any(), next)
			}
			b.addArc(next, charset.Any(), next)
			frontier = append(frontier, next)
			continue
		}
		afterStar = false

		label := TokenSet(tok)
		next := b.AddState()
		for _, f := range frontier {
			b.addArc(f, label, next)
		}
		frontier = append(frontier[:0], next)
	}

	for _, f := range frontier {
		b.states[f].accepting = true
	}
	b.start = start

	n, err := b.Build()
	if err != nil {
		// Unreachable: the start state was set above.
		panic(err)
	}
	return n
}

// TokenSet returns the bytes one occurrence of tok can consume.
// For '*' this is the set consumed per iteration.
func TokenSet(tok syntax.Token) charset.Set {
	switch tok.Kind {
	case syntax.TokenLiteral:
		return charset.Including(tok.Byte)
	case syntax.TokenClass:
		members := charset.None()
		for _, it := range tok.Items {
			if it.IsRange() {
				members = members.Union(charset.Range(it.Lo, it.Hi))
			} else {
				members = members.Union(charset.Including(it.Lo))
			}
		}
		if tok.Negated {
			return charset.Any().Difference(members)
		}
		return members
	default:
		return charset.Any()
	}
}
