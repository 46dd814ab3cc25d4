package nfa

import (
	"github.com/coregx/coreglob/charset"
	"github.com/coregx/coreglob/internal/conv"
)

// Builder constructs NFAs incrementally using a low-level API.
// This provides full control over NFA construction and is used by Build.
//
// State IDs are arena indices handed out in creation order, so a builder
// needs no global counter and two builders never share states.
type Builder struct {
	states []State
	start  StateID
}

// NewBuilder creates a new NFA builder with default capacity
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(16)
}

// NewBuilderWithCapacity creates a new NFA builder with specified initial capacity
func NewBuilderWithCapacity(capacity int) *Builder {
	return &Builder{
		states: make([]State, 0, capacity),
		start:  InvalidState,
	}
}

// AddState adds a non-accepting state without arcs and returns its ID
func (b *Builder) AddState() StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	b.states = append(b.states, State{id: id})
	return id
}

// AddArc adds an arc from -> to guarded by set.
// Arcs with an empty set can never be taken and are dropped.
func (b *Builder) AddArc(from StateID, set charset.Set, to StateID) error {
	if !b.valid(from) {
		return &BuildError{Message: "arc source out of bounds", StateID: from}
	}
	if !b.valid(to) {
		return &BuildError{Message: "arc target out of bounds", StateID: to}
	}
	b.addArc(from, set, to)
	return nil
}

func (b *Builder) addArc(from StateID, set charset.Set, to StateID) {
	if set.Empty() {
		return
	}
	s := &b.states[from]
	s.arcs = append(s.arcs, Arc{Set: set, Next: to})
}

// SetAccepting marks a state as accepting
func (b *Builder) SetAccepting(id StateID) error {
	if !b.valid(id) {
		return &BuildError{Message: "state ID out of bounds", StateID: id}
	}
	b.states[id].accepting = true
	return nil
}

// SetStart sets the initial state
func (b *Builder) SetStart(id StateID) error {
	if !b.valid(id) {
		return &BuildError{Message: "start state out of bounds", StateID: id}
	}
	b.start = id
	return nil
}

// States returns the current number of states
func (b *Builder) States() int {
	return len(b.states)
}

func (b *Builder) valid(id StateID) bool {
	return id != InvalidState && int(id) < len(b.states)
}

// Build finalizes the NFA. The builder must not be used afterwards.
func (b *Builder) Build() (*NFA, error) {
	if b.start == InvalidState {
		return nil, &BuildError{Message: "start state not set", StateID: InvalidState}
	}
	n := &NFA{
		states: b.states,
		start:  b.start,
	}
	b.states = nil
	b.start = InvalidState
	return n, nil
}
