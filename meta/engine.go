package meta

import (
	"bytes"
	"strconv"
	"sync/atomic"

	"github.com/coregx/coreglob/dfa"
	"github.com/coregx/coreglob/literal"
	"github.com/coregx/coreglob/nfa"
	"github.com/coregx/coreglob/prefilter"
	"github.com/coregx/coreglob/syntax"
)

// Engine is a compiled glob together with its execution strategy.
//
// The Engine:
//  1. Parses the pattern and extracts its literals
//  2. Builds the NFA and determinizes it
//  3. Selects the strategy and builds a prefilter
//
// Thread safety: an Engine is immutable after Compile apart from its atomic
// statistics, so one Engine can be shared by any number of goroutines.
//
// Example:
//
//	engine, err := meta.Compile("*.go")
//	if err != nil {
//	    return err
//	}
//	engine.IsMatch([]byte("main.go")) // true
type Engine struct {
	pattern  string
	tokens   []syntax.Token
	info     literal.Info
	nfa      *nfa.NFA
	dfa      *dfa.DFA
	strategy Strategy
	config   Config

	// prefilter is nil when disabled or when no test can reject anything.
	prefilter *prefilter.Tracker

	stats counters
}

// Stats tracks execution statistics for performance analysis.
type Stats struct {
	// DFASearches counts names decided by running the DFA
	DFASearches uint64

	// LiteralSearches counts names decided without the DFA: by UseExact,
	// UseAnchoredLiteral or a complete prefilter
	LiteralSearches uint64

	// PrefilterRejects counts names the prefilter ruled out before the DFA
	PrefilterRejects uint64
}

type counters struct {
	dfaSearches      atomic.Uint64
	literalSearches  atomic.Uint64
	prefilterRejects atomic.Uint64
}

// Compile compiles a glob pattern with the default configuration.
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a glob pattern with a custom configuration.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	tokens, err := syntax.Parse(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	info := literal.Extract(tokens)
	n := nfa.Build(tokens)
	d, err := determinize(n, &info, config)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	e := &Engine{
		pattern:  pattern,
		tokens:   tokens,
		info:     info,
		nfa:      n,
		dfa:      d,
		strategy: SelectStrategy(&info, config),
		config:   config,
	}
	if config.EnablePrefilter && e.strategy == UseDFA {
		e.prefilter = prefilter.NewTracker(prefilter.NewBuilder(info).Build())
	}
	return e, nil
}

// determinize builds the DFA for n.
//
// Without '*', every DFA state is a single NFA state, and for prefix*suffix
// the states track how much of the suffix was just read. Both DFAs are linear
// in the pattern length, so only the other patterns are held to MaxDFAStates.
func determinize(n *nfa.NFA, info *literal.Info, config Config) (*dfa.DFA, error) {
	if !info.Unbounded || info.IsAnchoredLiteral() {
		return dfa.Determinize(n), nil
	}
	return dfa.DeterminizeWithConfig(n, config.dfaConfig())
}

// IsMatch reports whether the whole haystack matches the pattern.
func (e *Engine) IsMatch(haystack []byte) bool {
	switch e.strategy {
	case UseExact:
		e.stats.literalSearches.Add(1)
		return bytes.Equal(haystack, e.info.Prefix)

	case UseAnchoredLiteral:
		e.stats.literalSearches.Add(1)
		return len(haystack) >= e.info.MinLen &&
			bytes.HasPrefix(haystack, e.info.Prefix) &&
			bytes.HasSuffix(haystack, e.info.Suffix)

	default:
		if e.prefilter != nil {
			if e.prefilter.Reject(haystack) {
				e.stats.prefilterRejects.Add(1)
				return false
			}
			if e.prefilter.IsComplete() {
				e.stats.literalSearches.Add(1)
				return true
			}
		}
		e.stats.dfaSearches.Add(1)
		return e.dfa.Match(haystack)
	}
}

// IsMatchString is like IsMatch but takes a string.
func (e *Engine) IsMatchString(s string) bool {
	return e.IsMatch([]byte(s))
}

// Strategy returns the execution strategy selected for this engine.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Pattern returns the source pattern.
func (e *Engine) Pattern() string {
	return e.pattern
}

// Tokens returns the parsed pattern. The slice must not be modified.
func (e *Engine) Tokens() []syntax.Token {
	return e.tokens
}

// Literals returns the literal Info of the pattern.
func (e *Engine) Literals() *literal.Info {
	return &e.info
}

// NFA returns the automaton built from the pattern.
func (e *Engine) NFA() *nfa.NFA {
	return e.nfa
}

// DFA returns the determinized automaton. It is built for every strategy.
func (e *Engine) DFA() *dfa.DFA {
	return e.dfa
}

// Prefilter returns the tracked prefilter, or nil if the engine has none.
func (e *Engine) Prefilter() *prefilter.Tracker {
	return e.prefilter
}

// Stats returns a snapshot of the execution statistics.
func (e *Engine) Stats() Stats {
	return Stats{
		DFASearches:      e.stats.dfaSearches.Load(),
		LiteralSearches:  e.stats.literalSearches.Load(),
		PrefilterRejects: e.stats.prefilterRejects.Load(),
	}
}

// ResetStats resets execution statistics to zero.
func (e *Engine) ResetStats() {
	e.stats.dfaSearches.Store(0)
	e.stats.literalSearches.Store(0)
	e.stats.prefilterRejects.Store(0)
	if e.prefilter != nil {
		e.prefilter.Reset()
	}
}

// String returns a human-readable representation of the engine.
func (e *Engine) String() string {
	return "Engine{pattern: " + quote(e.pattern) + ", strategy: " + e.strategy.String() +
		", states: " + strconv.Itoa(e.dfa.States()) + "}"
}

func quote(s string) string {
	return strconv.Quote(s)
}
