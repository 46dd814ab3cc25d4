package meta

import (
	"errors"

	"github.com/coregx/coreglob/syntax"
)

// CompileError represents a pattern compilation error.
//
// Err is a *syntax.ParseError for malformed patterns or a *dfa.DFAError when
// the pattern needs more DFA states than the configuration allows.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
// Parse errors already name the pattern and are returned unchanged.
func (e *CompileError) Error() string {
	var parseErr *syntax.ParseError
	if errors.As(e.Err, &parseErr) {
		return e.Err.Error()
	}
	return "glob: compiling " + quote(e.Pattern) + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}
