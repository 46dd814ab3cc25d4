// Package meta implements the engine that picks how a compiled glob is
// executed.
//
// Every pattern is parsed, built into an NFA and determinized. On top of the
// DFA, the engine looks at the literal structure of the pattern and chooses a
// cheaper strategy when one decides matches exactly:
//   - UseExact: the pattern has no wildcards, so matching is byte equality
//   - UseAnchoredLiteral: the pattern is prefix*suffix, so matching is a
//     length check plus a prefix and suffix comparison
//   - UseDFA: everything else runs the DFA behind a prefilter
//
// The meta-engine provides the matching API the root package exposes, hiding
// strategy selection from users.
package meta

import "github.com/coregx/coreglob/dfa"

// Config controls meta-engine behavior.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnablePrefilter = false // Always run the DFA
//	engine, err := meta.CompileWithConfig("*.go", config)
type Config struct {
	// EnablePrefilter enables literal-based rejection before the DFA.
	// Default: true
	EnablePrefilter bool

	// EnableLiteralStrategies allows UseExact and UseAnchoredLiteral.
	// When false, every pattern uses the DFA.
	// Default: true
	EnableLiteralStrategies bool

	// MaxDFAStates caps determinization. Patterns needing more states fail
	// to compile with an error wrapping dfa.ErrStateLimitExceeded.
	// Patterns without '*' and prefix*suffix patterns are not capped: their
	// DFA grows linearly with the pattern.
	// Default: 10000
	MaxDFAStates int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:         true,
		EnableLiteralStrategies: true,
		MaxDFAStates:            dfa.DefaultConfig().MaxStates,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
//
// Valid ranges:
//   - MaxDFAStates: 1 to 1,000,000
func (c Config) Validate() error {
	if c.MaxDFAStates < 1 || c.MaxDFAStates > 1_000_000 {
		return &ConfigError{
			Field:   "MaxDFAStates",
			Message: "must be between 1 and 1,000,000",
		}
	}
	return nil
}

// dfaConfig converts the meta config into a determinization config.
func (c Config) dfaConfig() dfa.Config {
	return dfa.DefaultConfig().WithMaxStates(c.MaxDFAStates)
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "glob: invalid config: " + e.Field + ": " + e.Message
}
