package meta

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/coregx/coreglob/dfa"
	"github.com/coregx/coreglob/syntax"
)

func mustCompile(t *testing.T, pattern string, config Config) *Engine {
	t.Helper()
	e, err := CompileWithConfig(pattern, config)
	if err != nil {
		t.Fatalf("CompileWithConfig(%q): %v", pattern, err)
	}
	return e
}

func TestStrategySelection(t *testing.T) {
	tests := []struct {
		pattern string
		want    Strategy
	}{
		{"", UseExact},
		{"Makefile", UseExact},
		{`\*`, UseExact},
		{"*", UseAnchoredLiteral},
		{"*.go", UseAnchoredLiteral},
		{"main*", UseAnchoredLiteral},
		{"cmd/**_test.go", UseAnchoredLiteral},
		{"?", UseDFA},
		{"*.[ch]", UseDFA},
		{"a*b*c", UseDFA},
		{"*_test*", UseDFA},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			e := mustCompile(t, tt.pattern, DefaultConfig())
			if got := e.Strategy(); got != tt.want {
				t.Errorf("Strategy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStrategySelection_LiteralStrategiesDisabled(t *testing.T) {
	config := DefaultConfig()
	config.EnableLiteralStrategies = false
	for _, pattern := range []string{"Makefile", "*.go"} {
		if got := mustCompile(t, pattern, config).Strategy(); got != UseDFA {
			t.Errorf("%q: Strategy() = %v, want UseDFA", pattern, got)
		}
	}
}

// TestIsMatch_StrategiesAgree runs every pattern under every configuration
// and checks the result against the DFA alone.
func TestIsMatch_StrategiesAgree(t *testing.T) {
	patterns := []string{
		"", "a", "abc", "*", "a*", "*a", "a*a", "aa*aa", "a*b*c", "?a?", "*ab*ba*",
		"[ab]*", "*[!a]", "ab*?", "?*?", `\**`, "*.go", "src/*_test.go",
	}
	names := []string{
		"", "a", "b", "aa", "ab", "ba", "abc", "aXbYc", "abba", "aaaa", "aaa",
		"*", "*a", "main.go", "main.go.bak", "src/x_test.go", "src/_test.go", "src_test.go",
	}

	configs := map[string]Config{"default": DefaultConfig()}
	noPrefilter := DefaultConfig()
	noPrefilter.EnablePrefilter = false
	configs["no prefilter"] = noPrefilter
	dfaOnly := DefaultConfig()
	dfaOnly.EnableLiteralStrategies = false
	configs["dfa only"] = dfaOnly

	for _, pattern := range patterns {
		reference := mustCompile(t, pattern, DefaultConfig()).DFA()
		for name, config := range configs {
			e := mustCompile(t, pattern, config)
			for _, in := range names {
				want := reference.MatchString(in)
				if got := e.IsMatchString(in); got != want {
					t.Errorf("%s: %q on %q = %v (strategy %v), want %v", name, pattern, in, got, e.Strategy(), want)
				}
			}
		}
	}
}

func TestStats(t *testing.T) {
	e := mustCompile(t, "a*b*c", DefaultConfig())

	e.IsMatchString("abc")  // DFA
	e.IsMatchString("ab")   // too short
	e.IsMatchString("xbc")  // wrong prefix
	e.IsMatchString("aXbc") // DFA

	got := e.Stats()
	if got.DFASearches != 2 || got.PrefilterRejects != 2 || got.LiteralSearches != 0 {
		t.Errorf("Stats() = %+v", got)
	}

	e.ResetStats()
	if got := e.Stats(); got != (Stats{}) {
		t.Errorf("after ResetStats, Stats() = %+v", got)
	}

	lit := mustCompile(t, "*.go", DefaultConfig())
	lit.IsMatchString("x.go")
	if got := lit.Stats(); got.LiteralSearches != 1 || got.DFASearches != 0 {
		t.Errorf("literal strategy Stats() = %+v", got)
	}
}

func TestStats_CompletePrefilter(t *testing.T) {
	// "???" uses the DFA strategy, but its length prefilter decides alone.
	e := mustCompile(t, "???", DefaultConfig())
	if e.Strategy() != UseDFA || !e.Prefilter().IsComplete() {
		t.Fatalf("%v: want UseDFA behind a complete prefilter", e)
	}

	if !e.IsMatchString("abc") || e.IsMatchString("ab") {
		t.Fatal("??? should match exactly three bytes")
	}
	if got := e.Stats(); got.LiteralSearches != 1 || got.PrefilterRejects != 1 || got.DFASearches != 0 {
		t.Errorf("Stats() = %+v", got)
	}
}

func TestIsMatch_ExactPatternsOnDFA(t *testing.T) {
	config := DefaultConfig()
	config.EnableLiteralStrategies = false
	for _, pattern := range []string{"a", "abc", "main.go"} {
		e := mustCompile(t, pattern, config)
		if !e.IsMatchString(pattern) {
			t.Errorf("%q does not match itself on %v", pattern, e.Strategy())
		}
		if e.IsMatchString(pattern + pattern) {
			t.Errorf("%q matched itself twice over", pattern)
		}
	}
}

func TestCompile_LinearPatternsIgnoreStateLimit(t *testing.T) {
	config := DefaultConfig()
	config.MaxDFAStates = 8
	for _, pattern := range []string{
		strings.Repeat("a", 100),
		strings.Repeat("?", 100),
		strings.Repeat("[ab]", 50),
		"lib*" + strings.Repeat("x", 50),
	} {
		if _, err := CompileWithConfig(pattern, config); err != nil {
			t.Errorf("%.8q...: %v", pattern, err)
		}
	}
	if _, err := CompileWithConfig("src/*"+strings.Repeat("[ab]", 20), config); !errors.Is(err, dfa.ErrStateLimitExceeded) {
		t.Errorf("pattern with '*' before classes: error = %v, want ErrStateLimitExceeded", err)
	}

	e := mustCompile(t, strings.Repeat("?", 100), config)
	if e.DFA().States() != 101 {
		t.Errorf("DFA().States() = %d, want 101", e.DFA().States())
	}
}

func TestPrefilterPresence(t *testing.T) {
	if e := mustCompile(t, "*?*", DefaultConfig()); e.Prefilter() == nil {
		t.Error("*?* should get a length prefilter")
	}
	if e := mustCompile(t, "*.go", DefaultConfig()); e.Prefilter() != nil {
		t.Error("literal strategies do not use a prefilter")
	}
	config := DefaultConfig()
	config.EnablePrefilter = false
	if e := mustCompile(t, "a*b*c", config); e.Prefilter() != nil {
		t.Error("prefilter should be disabled by config")
	}
}

func TestCompile_ParseError(t *testing.T) {
	_, err := Compile("[abc")
	var ce *CompileError
	if !errors.As(err, &ce) || ce.Pattern != "[abc" {
		t.Fatalf("error = %v, want *CompileError", err)
	}
	var pe *syntax.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error %v should wrap *syntax.ParseError", err)
	}
	if err.Error() != pe.Error() {
		t.Errorf("Error() = %q, want the parse error %q", err.Error(), pe.Error())
	}
}

func TestCompile_StateLimit(t *testing.T) {
	config := DefaultConfig()
	config.MaxDFAStates = 8
	_, err := CompileWithConfig("*a??????", config)
	if !errors.Is(err, dfa.ErrStateLimitExceeded) {
		t.Fatalf("error = %v, want ErrStateLimitExceeded", err)
	}
	if !strings.HasPrefix(err.Error(), `glob: compiling "*a??????": `) {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestConfig_Validate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
	for _, n := range []int{0, -1, 1_000_001} {
		config := DefaultConfig()
		config.MaxDFAStates = n
		var ce *ConfigError
		if _, err := CompileWithConfig("a", config); !errors.As(err, &ce) || ce.Field != "MaxDFAStates" {
			t.Errorf("MaxDFAStates=%d: error = %v, want *ConfigError", n, err)
		}
	}
}

func TestEngine_Accessors(t *testing.T) {
	e := mustCompile(t, "a?c", DefaultConfig())
	if e.Pattern() != "a?c" || len(e.Tokens()) != 3 {
		t.Errorf("Pattern/Tokens = %q/%v", e.Pattern(), e.Tokens())
	}
	if e.NFA().States() != 4 || e.DFA().States() != 4 {
		t.Errorf("NFA/DFA states = %d/%d, want 4/4", e.NFA().States(), e.DFA().States())
	}
	if e.Literals().MinLen != 3 {
		t.Errorf("Literals().MinLen = %d, want 3", e.Literals().MinLen)
	}
	if got := e.String(); got != `Engine{pattern: "a?c", strategy: UseDFA, states: 4}` {
		t.Errorf("String() = %q", got)
	}
	if Strategy(99).String() != "Unknown" {
		t.Error("unknown strategies should print as Unknown")
	}
}

// TestConcurrentMatch checks that one Engine can be shared across goroutines.
// Run with -race.
func TestConcurrentMatch(t *testing.T) {
	patterns := []string{"*.go", "a*b*c", "Makefile", "[!.]*"}
	inputs := []string{"main.go", "abc", "Makefile", ".hidden", "aXbYc", "x"}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			e := mustCompile(t, pattern, DefaultConfig())
			want := make([]bool, len(inputs))
			for i, in := range inputs {
				want[i] = e.DFA().MatchString(in)
			}

			var wg sync.WaitGroup
			for g := 0; g < 16; g++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for iter := 0; iter < 200; iter++ {
						for i, in := range inputs {
							if got := e.IsMatchString(in); got != want[i] {
								t.Errorf("IsMatchString(%q) = %v, want %v", in, got, want[i])
								return
							}
						}
					}
				}()
			}
			wg.Wait()
		})
	}
}
