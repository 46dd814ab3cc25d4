// Package coreglob compiles fnmatch-style glob patterns into deterministic
// automata.
//
// A pattern is parsed into tokens, built into an NFA whose arcs are labeled
// with byte sets, and determinized by subset construction. Matching a name
// is then one table lookup per byte, with no backtracking, so the cost is
// linear in the length of the name regardless of how many '*' the pattern
// has. Patterns that are plain literals or of the form prefix*suffix skip the
// automaton altogether.
//
// Pattern syntax:
//
//	*        any sequence of bytes, including none
//	?        any single byte
//	[abc]    one byte from the set; ranges like [a-z] are allowed
//	[!abc]   one byte not in the set
//	\c       the byte c itself
//
// Matching is byte-oriented and anchored at both ends: the whole name must
// match. '/' and leading dots are ordinary bytes.
//
// Basic usage:
//
//	g, err := coreglob.Compile("*.go")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	g.MatchString("main.go") // true
//	g.MatchString("main.rs") // false
//
// Advanced usage:
//
//	config := coreglob.DefaultConfig()
//	config.MaxDFAStates = 1000 // Reject pathological patterns early
//	g, err := coreglob.CompileWithConfig(untrusted, config)
package coreglob

import (
	"strconv"

	"github.com/coregx/coreglob/meta"
	"github.com/coregx/coreglob/syntax"
)

// Glob represents a compiled glob pattern.
//
// A Glob is safe to use concurrently from multiple goroutines.
//
// Example:
//
//	g := coreglob.MustCompile("*_test.go")
//	if g.MatchString("glob_test.go") {
//	    println("matched!")
//	}
type Glob struct {
	engine  *meta.Engine
	pattern string
}

// Config is the compilation configuration. See meta.Config.
type Config = meta.Config

// DefaultConfig returns the default compilation configuration.
func DefaultConfig() Config {
	return meta.DefaultConfig()
}

// Compile compiles a glob pattern.
//
// Returns a *meta.CompileError if the pattern is malformed: an unterminated
// bracket expression or a trailing backslash.
//
// Example:
//
//	g, err := coreglob.Compile("[a-z]*.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Glob, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles a glob pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time.
//
// Example:
//
//	var goFiles = coreglob.MustCompile("*.go")
func MustCompile(pattern string) *Glob {
	g, err := Compile(pattern)
	if err != nil {
		panic("coreglob: Compile(" + strconv.Quote(pattern) + "): " + err.Error())
	}
	return g
}

// CompileWithConfig compiles a pattern with custom configuration.
func CompileWithConfig(pattern string, config Config) (*Glob, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}

	return &Glob{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// Match reports whether the byte slice b matches the whole pattern.
func (g *Glob) Match(b []byte) bool {
	return g.engine.IsMatch(b)
}

// MatchString reports whether the string s matches the whole pattern.
func (g *Glob) MatchString(s string) bool {
	return g.Match([]byte(s))
}

// String returns the source text used to compile the glob.
func (g *Glob) String() string {
	return g.pattern
}

// Strategy returns the execution strategy chosen for the pattern.
func (g *Glob) Strategy() meta.Strategy {
	return g.engine.Strategy()
}

// Stats returns execution statistics.
func (g *Glob) Stats() meta.Stats {
	return g.engine.Stats()
}

// ResetStats resets execution statistics to zero.
func (g *Glob) ResetStats() {
	g.engine.ResetStats()
}

// Match reports whether name matches the glob pattern.
//
// It fails for a malformed pattern, or when a pattern with '*' needs more
// DFA states than DefaultConfig allows. Patterns without '*' and patterns of
// the form prefix*suffix never hit the state limit.
//
// For repeated use of the same pattern, Compile it once instead.
func Match(pattern, name string) (bool, error) {
	g, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return g.MatchString(name), nil
}

// QuoteMeta returns a pattern that matches exactly the string s by escaping
// every glob metacharacter in it.
//
// Example:
//
//	coreglob.QuoteMeta("what?[1].txt") // `what\?\[1].txt`
func QuoteMeta(s string) string {
	return syntax.QuoteMeta(s)
}
