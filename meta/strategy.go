package meta

import (
	"github.com/coregx/coreglob/literal"
)

// Strategy represents the execution strategy for glob matching.
type Strategy int

const (
	// UseDFA runs the determinized automaton, after a prefilter when the
	// pattern has usable literals. It handles every pattern.
	UseDFA Strategy = iota

	// UseExact compares the name with the pattern's literal bytes.
	// Selected for patterns without '?', '*' or bracket expressions.
	UseExact

	// UseAnchoredLiteral checks length, prefix and suffix.
	// Selected for patterns of the form prefix*suffix, like "*.go",
	// "Makefile*" or "cmd/*_test.go".
	UseAnchoredLiteral
)

// String returns a human-readable representation of the strategy.
func (s Strategy) String() string {
	switch s {
	case UseDFA:
		return "UseDFA"
	case UseExact:
		return "UseExact"
	case UseAnchoredLiteral:
		return "UseAnchoredLiteral"
	default:
		return "Unknown"
	}
}

// SelectStrategy picks the execution strategy for a pattern's literal Info.
func SelectStrategy(info *literal.Info, config Config) Strategy {
	if !config.EnableLiteralStrategies {
		return UseDFA
	}
	switch {
	case info.Exact:
		return UseExact
	case info.IsAnchoredLiteral():
		return UseAnchoredLiteral
	default:
		return UseDFA
	}
}
