package nfa

import (
	"fmt"

	"github.com/coregx/coreglob/charset"
	"github.com/coregx/coreglob/internal/sparse"
)

// StateID uniquely identifies an NFA state.
// It is the state's index in the NFA's arena.
type StateID uint32

// InvalidState represents an invalid/uninitialized state ID
const InvalidState StateID = 0xFFFFFFFF

// Arc is a transition guarded by a set of bytes.
type Arc struct {
	Set  charset.Set
	Next StateID
}

// String returns a human-readable representation of the arc
func (a Arc) String() string {
	return fmt.Sprintf("%s -> %d", a.Set.Label(), a.Next)
}

// State is a single NFA state: its outgoing arcs and whether it accepts.
//
// Arcs out of one state may overlap; that is what makes the automaton
// nondeterministic.
type State struct {
	id        StateID
	accepting bool
	arcs      []Arc
}

// ID returns the state's unique identifier
func (s *State) ID() StateID {
	return s.id
}

// IsAccepting returns true if input ending in this state is accepted
func (s *State) IsAccepting() bool {
	return s.accepting
}

// Arcs returns the outgoing arcs in insertion order.
// The slice must not be modified.
func (s *State) Arcs() []Arc {
	return s.arcs
}

// String returns a human-readable representation of the state
func (s *State) String() string {
	if s.accepting {
		return fmt.Sprintf("State(%d, accepting, %d arcs)", s.id, len(s.arcs))
	}
	return fmt.Sprintf("State(%d, %d arcs)", s.id, len(s.arcs))
}

// NFA is an epsilon-free nondeterministic automaton whose arcs are labeled by
// byte sets. It is immutable once built and safe for concurrent use.
type NFA struct {
	// states contains all NFA states indexed by StateID
	states []State

	start StateID
}

// Start returns the initial state.
func (n *NFA) Start() StateID {
	return n.start
}

// State returns the state with the given ID.
// Returns nil if the ID is invalid.
func (n *NFA) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(n.states) {
		return nil
	}
	return &n.states[id]
}

// IsAccepting returns true if the given state is accepting
func (n *NFA) IsAccepting(id StateID) bool {
	if s := n.State(id); s != nil {
		return s.accepting
	}
	return false
}

// States returns the total number of states in the NFA
func (n *NFA) States() int {
	return len(n.states)
}

// Arcs returns the total number of arcs in the NFA
func (n *NFA) Arcs() int {
	total := 0
	for i := range n.states {
		total += len(n.states[i].arcs)
	}
	return total
}

// Iter returns an iterator over all states in the NFA
func (n *NFA) Iter() *StateIter {
	return &StateIter{nfa: n}
}

// StateIter is an iterator over NFA states
type StateIter struct {
	nfa *NFA
	pos int
}

// Next returns the next state in the iteration.
// Returns nil when iteration is complete.
func (it *StateIter) Next() *State {
	if it.pos >= len(it.nfa.states) {
		return nil
	}
	s := &it.nfa.states[it.pos]
	it.pos++
	return s
}

// HasNext returns true if there are more states to iterate
func (it *StateIter) HasNext() bool {
	return it.pos < len(it.nfa.states)
}

// Simulate runs the NFA directly on input by tracking the set of live states.
//
// This is the reference semantics the DFA must reproduce. It costs
// O(len(input) * arcs) and exists for verification and diagnostics.
func (n *NFA) Simulate(input []byte) bool {
	//nolint:gosec // G115: state count is bounded by StateID, a uint32
	size := uint32(len(n.states))
	cur := sparse.NewSparseSet(size)
	next := sparse.NewSparseSet(size)
	cur.Insert(uint32(n.start))

	for _, b := range input {
		next.Clear()
		for _, id := range cur.Values() {
			for _, arc := range n.states[id].arcs {
				if arc.Set.Contains(b) {
					next.Insert(uint32(arc.Next))
				}
			}
		}
		if next.IsEmpty() {
			return false
		}
		cur, next = next, cur
	}

	for _, id := range cur.Values() {
		if n.states[id].accepting {
			return true
		}
	}
	return false
}

// String returns a human-readable representation of the NFA
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, arcs: %d, start: %d}", len(n.states), n.Arcs(), n.start)
}
