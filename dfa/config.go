package dfa

// Config bounds eager determinization.
type Config struct {
	// MaxStates is the maximum number of DFA states to build.
	// Determinization fails with ErrStateLimitExceeded beyond it.
	//
	// Default: 10,000 states
	//
	// Ordinary globs need a handful of states per token. Only patterns with
	// many '*' followed by many '?' or classes come near the default.
	MaxStates int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxStates: 10_000,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of acceptable range.
func (c *Config) Validate() error {
	if c.MaxStates <= 0 {
		return &DFAError{
			Kind:    InvalidConfig,
			Message: "MaxStates must be > 0",
		}
	}
	return nil
}

// WithMaxStates returns a new config with the specified max states
func (c Config) WithMaxStates(maxStates int) Config {
	c.MaxStates = maxStates
	return c
}
