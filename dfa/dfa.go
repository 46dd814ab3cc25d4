// Package dfa turns glob NFAs into deterministic automata and runs them.
//
// Determinization is eager: the whole DFA is built up front by subset
// construction. Glob NFAs have no epsilon transitions, so a DFA state is just
// the set of NFA states the input read so far can end in.
//
// Matching is a table walk over byte equivalence classes:
//
//	n, err := nfa.Compile("*.txt")
//	if err != nil {
//	    return err
//	}
//	d := dfa.Determinize(n)
//	d.MatchString("notes.txt") // true
package dfa

import (
	"fmt"

	"github.com/coregx/coreglob/charset"
)

// DFA is a deterministic automaton whose arcs are labeled by byte sets.
//
// Besides the arc lists, the DFA keeps a dense transition table indexed by
// state and byte class. The table is derived from the arcs and is what Match
// uses.
//
// A DFA is immutable once built and safe for concurrent use.
type DFA struct {
	states []State

	// classes partitions the bytes so that no arc label splits a class.
	classes charset.ByteClasses

	// table[id*stride+class] is the successor of state id, or DeadState.
	table  []StateID
	stride int
}

func newDFA(states []State) *DFA {
	var labels []charset.Set
	for i := range states {
		for _, arc := range states[i].arcs {
			labels = append(labels, arc.Set)
		}
	}

	d := &DFA{
		states:  states,
		classes: charset.NewByteClasses(charset.Partition(labels)),
	}
	d.stride = d.classes.AlphabetLen()
	d.table = make([]StateID, len(states)*d.stride)

	reps := d.classes.Representatives()
	for i := range states {
		row := d.table[i*d.stride : (i+1)*d.stride]
		for class, rep := range reps {
			row[class] = states[i].step(rep)
		}
	}
	return d
}

// step scans the arcs for the one containing b.
func (s *State) step(b byte) StateID {
	for _, arc := range s.arcs {
		if arc.Set.Contains(b) {
			return arc.Next
		}
	}
	return DeadState
}

// Match reports whether the DFA accepts the whole input.
//
// It reads each byte once, never backtracks, and stops early on a dead
// transition.
func (d *DFA) Match(input []byte) bool {
	s := StartState
	for _, b := range input {
		s = d.table[int(s)*d.stride+int(d.classes.Get(b))]
		if s == DeadState {
			return false
		}
	}
	return d.states[s].accepting
}

// MatchString is like Match but takes a string.
func (d *DFA) MatchString(input string) bool {
	s := StartState
	for i := 0; i < len(input); i++ {
		s = d.table[int(s)*d.stride+int(d.classes.Get(input[i]))]
		if s == DeadState {
			return false
		}
	}
	return d.states[s].accepting
}

// Next returns the state reached from id on b using the transition table.
// Returns DeadState when no arc of id contains b, or when id is not a state.
func (d *DFA) Next(id StateID, b byte) StateID {
	if int(id) >= len(d.states) {
		return DeadState
	}
	return d.table[int(id)*d.stride+int(d.classes.Get(b))]
}

// StepArcs is like Next but scans the arcs of id instead of the table.
func (d *DFA) StepArcs(id StateID, b byte) StateID {
	s := d.State(id)
	if s == nil {
		return DeadState
	}
	return s.step(b)
}

// Start returns the initial state, which is always StartState.
func (d *DFA) Start() StateID {
	return StartState
}

// States returns the number of states in the DFA
func (d *DFA) States() int {
	return len(d.states)
}

// State returns the state with the given ID.
// Returns nil if the ID is invalid.
func (d *DFA) State(id StateID) *State {
	if int(id) >= len(d.states) {
		return nil
	}
	return &d.states[id]
}

// IsAccepting returns true if the given state is accepting
func (d *DFA) IsAccepting(id StateID) bool {
	if s := d.State(id); s != nil {
		return s.accepting
	}
	return false
}

// Arcs returns the total number of arcs in the DFA
func (d *DFA) Arcs() int {
	total := 0
	for i := range d.states {
		total += len(d.states[i].arcs)
	}
	return total
}

// ByteClasses returns the byte classes of the transition table.
func (d *DFA) ByteClasses() *charset.ByteClasses {
	return &d.classes
}

// String returns a human-readable representation of the DFA
func (d *DFA) String() string {
	return fmt.Sprintf("DFA{states: %d, arcs: %d, classes: %d}", len(d.states), d.Arcs(), d.stride)
}
