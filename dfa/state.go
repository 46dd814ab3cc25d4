package dfa

import (
	"fmt"
	"slices"

	"github.com/coregx/coreglob/charset"
	"github.com/coregx/coreglob/nfa"
)

// StateID uniquely identifies a DFA state.
// States are numbered in the order determinization discovers them.
type StateID uint32

const (
	// StartState is the ID of the initial state of every DFA.
	StartState StateID = 0

	// DeadState is returned by transitions that no arc covers.
	// It is not a real state: once reached, no input can be accepted.
	DeadState StateID = 0xFFFFFFFE

	// InvalidState represents an invalid/uninitialized state ID
	InvalidState StateID = 0xFFFFFFFF
)

// Arc is a deterministic transition. The arcs out of one state are pairwise
// disjoint, so at most one of them contains any given byte.
type Arc struct {
	Set  charset.Set
	Next StateID
}

// String returns a human-readable representation of the arc
func (a Arc) String() string {
	return fmt.Sprintf("%s -> %d", a.Set.Label(), a.Next)
}

// State is a DFA state together with the NFA subset it stands for.
type State struct {
	id        StateID
	accepting bool
	arcs      []Arc
	nfaStates []nfa.StateID
}

// ID returns the state's unique identifier
func (s *State) ID() StateID {
	return s.id
}

// IsAccepting returns true if input ending in this state is accepted
func (s *State) IsAccepting() bool {
	return s.accepting
}

// Arcs returns the outgoing arcs. The slice must not be modified.
func (s *State) Arcs() []Arc {
	return s.arcs
}

// NFAStates returns the sorted NFA state IDs this state represents.
// The slice must not be modified.
func (s *State) NFAStates() []nfa.StateID {
	return s.nfaStates
}

// String returns a human-readable representation of the state
func (s *State) String() string {
	if s.accepting {
		return fmt.Sprintf("DFAState(%d, accepting, nfa=%v, %d arcs)", s.id, s.nfaStates, len(s.arcs))
	}
	return fmt.Sprintf("DFAState(%d, nfa=%v, %d arcs)", s.id, s.nfaStates, len(s.arcs))
}

// StateKey uniquely identifies a DFA state based on its NFA state set.
//
// The key is the exact byte encoding of the sorted IDs, not a hash, so two
// distinct subsets can never collide.
type StateKey string

// ComputeStateKey computes the key for a set of NFA states.
// The same set produces the same key regardless of order.
func ComputeStateKey(nfaStates []nfa.StateID) StateKey {
	sorted := nfaStates
	if !slices.IsSorted(sorted) {
		sorted = slices.Clone(nfaStates)
		slices.Sort(sorted)
	}

	buf := make([]byte, 0, 4*len(sorted))
	for _, sid := range sorted {
		buf = append(buf,
			byte(sid),
			byte(sid>>8),
			byte(sid>>16),
			byte(sid>>24),
		)
	}
	return StateKey(buf)
}
