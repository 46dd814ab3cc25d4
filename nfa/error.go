// Package nfa builds nondeterministic finite automata from glob tokens.
//
// The automata have no epsilon transitions: every arc consumes one byte and
// is labeled by a charset.Set, including '?' and '*' whose label is the set of
// all bytes. States live in an arena and refer to each other by StateID.
package nfa

import (
	"fmt"
)

// CompileError wraps a pattern error with the pattern that caused it
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	return fmt.Sprintf("NFA compilation failed for pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}

// BuildError represents an error during NFA construction via the Builder API
type BuildError struct {
	Message string
	StateID StateID
}

// Error implements the error interface
func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("NFA build error at state %d: %s", e.StateID, e.Message)
	}
	return fmt.Sprintf("NFA build error: %s", e.Message)
}
