package nfa

import (
	"errors"
	"testing"

	"github.com/coregx/coreglob/charset"
	"github.com/coregx/coreglob/syntax"
)

func mustCompile(t *testing.T, pattern string) *NFA {
	t.Helper()
	n, err := Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	return n
}

func acceptingStates(n *NFA) []StateID {
	var out []StateID
	for it := n.Iter(); it.HasNext(); {
		if s := it.Next(); s.IsAccepting() {
			out = append(out, s.ID())
		}
	}
	return out
}

func TestBuild_Empty(t *testing.T) {
	n := Build(nil)

	if n.States() != 1 {
		t.Fatalf("States() = %d, want 1", n.States())
	}
	if !n.IsAccepting(n.Start()) {
		t.Error("start state of the empty pattern must accept")
	}
	if n.Arcs() != 0 {
		t.Errorf("Arcs() = %d, want 0", n.Arcs())
	}
}

func TestBuild_LiteralChain(t *testing.T) {
	n := mustCompile(t, "abc")

	if n.States() != 4 {
		t.Fatalf("States() = %d, want 4", n.States())
	}
	for i, c := range []byte("abc") {
		arcs := n.State(StateID(i)).Arcs()
		if len(arcs) != 1 {
			t.Fatalf("state %d has %d arcs, want 1", i, len(arcs))
		}
		if arcs[0].Set != charset.Including(c) || arcs[0].Next != StateID(i+1) {
			t.Errorf("state %d arc = %v, want %q -> %d", i, arcs[0], c, i+1)
		}
	}
	if got := acceptingStates(n); len(got) != 1 || got[0] != 3 {
		t.Errorf("accepting states = %v, want [3]", got)
	}
}

func TestBuild_Star(t *testing.T) {
	n := mustCompile(t, "*")

	if n.States() != 2 {
		t.Fatalf("States() = %d, want 2", n.States())
	}
	start := n.State(n.Start())
	if len(start.Arcs()) != 1 || !start.Arcs()[0].Set.All() || start.Arcs()[0].Next != 1 {
		t.Errorf("start arcs = %v, want [ALL -> 1]", start.Arcs())
	}
	loop := n.State(1)
	if len(loop.Arcs()) != 1 || !loop.Arcs()[0].Set.All() || loop.Arcs()[0].Next != 1 {
		t.Errorf("star state arcs = %v, want [ALL -> 1]", loop.Arcs())
	}
	// Zero or more: both the start and the loop state accept.
	if got := acceptingStates(n); len(got) != 2 {
		t.Errorf("accepting states = %v, want [0 1]", got)
	}
}

func TestBuild_StarRunsCollapse(t *testing.T) {
	one := mustCompile(t, "a*b")
	for _, p := range []string{"a**b", "a***b"} {
		n := mustCompile(t, p)
		if n.States() != one.States() || n.Arcs() != one.Arcs() {
			t.Errorf("%q: %v, want same shape as a*b %v", p, n, one)
		}
	}
}

func TestBuild_StarBypass(t *testing.T) {
	// a*b: the 'b' arc leaves both the state after 'a' and the star state.
	n := mustCompile(t, "a*b")

	var sources []StateID
	for it := n.Iter(); it.HasNext(); {
		s := it.Next()
		for _, arc := range s.Arcs() {
			if arc.Set == charset.Including('b') {
				sources = append(sources, s.ID())
			}
		}
	}
	if len(sources) != 2 {
		t.Errorf("'b' arcs leave %v, want two states", sources)
	}
}

func TestTokenSet(t *testing.T) {
	tests := []struct {
		pattern string
		want    charset.Set
	}{
		{"a", charset.Including('a')},
		{"?", charset.Any()},
		{"*", charset.Any()},
		{"[abc]", charset.IncludingString("abc")},
		{"[a-c]", charset.IncludingString("abc")},
		{"[c-a]", charset.IncludingString("abc")},
		{"[!abc]", charset.ExcludingString("abc")},
		{"[a-cx]", charset.IncludingString("abcx")},
		{"[!a-cb]", charset.ExcludingString("abc")},
		{"[\x00-\xff]", charset.Any()},
		{"[!\x00-\xff]", charset.None()},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			tokens := syntax.MustParse(tt.pattern)
			if got := TokenSet(tokens[0]); got != tt.want {
				t.Errorf("TokenSet = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBuild_EmptyClassNeverMatches(t *testing.T) {
	n := mustCompile(t, "a[!\x00-\xff]")
	for _, in := range []string{"a", "ab", "a\x00", ""} {
		if n.Simulate([]byte(in)) {
			t.Errorf("pattern with an empty class matched %q", in)
		}
	}
}

func TestSimulate(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"f[aeiou]o", "foo", true},
		{"f[aeiou]o", "fxo", false},
		{"*.txt", "hello.txt", true},
		{"*.txt", "hello.txto", false},
		{"*.txt", ".txt", true},
		{"", "", true},
		{"", "a", false},
		{"?", "a", true},
		{"?", "", false},
		{"?", "ab", false},
		{"[!aeiou]", "b", true},
		{"[!aeiou]", "a", false},
		{"[a-z]", "m", true},
		{"[a-z]", "M", false},
		{"a*", "a", true},
		{"a*", "abc", true},
		{"a*", "ba", false},
		{"*", "", true},
		{"**", "", true},
		{"a*b*c", "abc", true},
		{"a*b*c", "aXbYc", true},
		{"a*b*c", "acb", false},
		{"*a*", "bab", true},
		{"*a*", "bbb", false},
		{`\*`, "*", true},
		{`\*`, "x", false},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			n := mustCompile(t, tt.pattern)
			if got := n.Simulate([]byte(tt.input)); got != tt.want {
				t.Errorf("Simulate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompile_Error(t *testing.T) {
	n, err := Compile("ab[c")
	if err == nil {
		t.Fatalf("Compile returned %v, want error", n)
	}
	var ce *CompileError
	if !errors.As(err, &ce) || ce.Pattern != "ab[c" {
		t.Fatalf("error = %v, want *CompileError for the pattern", err)
	}
	if !errors.Is(err, syntax.ErrUnterminatedClass) {
		t.Errorf("error %v should wrap ErrUnterminatedClass", err)
	}
}

func TestBuilder(t *testing.T) {
	b := NewBuilder()
	s0 := b.AddState()
	s1 := b.AddState()

	if err := b.AddArc(s0, charset.Including('x'), s1); err != nil {
		t.Fatalf("AddArc: %v", err)
	}
	if err := b.AddArc(s0, charset.None(), s1); err != nil {
		t.Fatalf("AddArc with empty set: %v", err)
	}
	if err := b.SetAccepting(s1); err != nil {
		t.Fatalf("SetAccepting: %v", err)
	}
	if err := b.SetStart(s0); err != nil {
		t.Fatalf("SetStart: %v", err)
	}
	if b.States() != 2 {
		t.Errorf("States() = %d, want 2", b.States())
	}

	n, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := len(n.State(s0).Arcs()); got != 1 {
		t.Errorf("empty-set arc should be dropped, got %d arcs", got)
	}
	if !n.Simulate([]byte("x")) || n.Simulate([]byte("y")) {
		t.Error("hand-built NFA should accept exactly \"x\"")
	}
}

func TestBuilder_Errors(t *testing.T) {
	b := NewBuilder()
	s0 := b.AddState()

	var be *BuildError
	if err := b.AddArc(s0, charset.Any(), 5); !errors.As(err, &be) || be.StateID != 5 {
		t.Errorf("AddArc to missing state: %v", err)
	}
	if err := b.AddArc(InvalidState, charset.Any(), s0); !errors.As(err, &be) {
		t.Errorf("AddArc from InvalidState: %v", err)
	}
	if err := b.SetAccepting(9); err == nil {
		t.Error("SetAccepting on missing state should fail")
	}
	if err := b.SetStart(9); err == nil {
		t.Error("SetStart on missing state should fail")
	}
	if _, err := b.Build(); err == nil {
		t.Error("Build without start state should fail")
	}
}

func TestNFA_Accessors(t *testing.T) {
	n := mustCompile(t, "a?")

	if n.State(InvalidState) != nil || n.State(StateID(n.States())) != nil {
		t.Error("State() should return nil for invalid IDs")
	}
	if n.IsAccepting(InvalidState) {
		t.Error("IsAccepting(InvalidState) should be false")
	}
	if got := n.String(); got != "NFA{states: 3, arcs: 2, start: 0}" {
		t.Errorf("String() = %q", got)
	}
	if got := n.State(2).String(); got != "State(2, accepting, 0 arcs)" {
		t.Errorf("State.String() = %q", got)
	}
	if got := n.State(0).Arcs()[0].String(); got != `"a" -> 1` {
		t.Errorf("Arc.String() = %q", got)
	}

	count := 0
	for it := n.Iter(); it.HasNext(); it.Next() {
		count++
	}
	if count != n.States() {
		t.Errorf("iterator visited %d states, want %d", count, n.States())
	}
}
