package dfa

import (
	"github.com/coregx/coreglob/charset"
	"github.com/coregx/coreglob/internal/conv"
	"github.com/coregx/coreglob/internal/sparse"
	"github.com/coregx/coreglob/nfa"
)

// Determinize builds the DFA equivalent to n by subset construction.
//
// It has no state limit and never fails. Use DeterminizeWithConfig to bound
// the work for untrusted patterns.
func Determinize(n *nfa.NFA) *DFA {
	d, err := newDeterminizer(n, 0).run()
	if err != nil {
		// Unreachable: without a limit run never fails.
		panic(err)
	}
	return d
}

// DeterminizeWithConfig is like Determinize but stops with
// ErrStateLimitExceeded once more than config.MaxStates states would exist.
func DeterminizeWithConfig(n *nfa.NFA, config Config) (*DFA, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return newDeterminizer(n, config.MaxStates).run()
}

// determinizer holds the state of one subset construction.
//
// DFA states are appended to states as they are discovered and processed in
// the same order, so the slice doubles as a FIFO worklist.
type determinizer struct {
	nfa       *nfa.NFA
	states    []State
	index     map[StateKey]StateID
	targets   *sparse.SparseSet
	maxStates int
}

func newDeterminizer(n *nfa.NFA, maxStates int) *determinizer {
	return &determinizer{
		nfa:       n,
		index:     make(map[StateKey]StateID),
		targets:   sparse.NewSparseSet(conv.IntToUint32(n.States())),
		maxStates: maxStates,
	}
}

func (d *determinizer) run() (*DFA, error) {
	if _, err := d.lookup([]nfa.StateID{d.nfa.Start()}); err != nil {
		return nil, err
	}

	for i := 0; i < len(d.states); i++ {
		arcs, err := d.successors(d.states[i].nfaStates)
		if err != nil {
			return nil, err
		}
		// d.states may have grown; index again instead of holding a pointer.
		d.states[i].arcs = arcs
	}

	return newDFA(d.states), nil
}

// successors computes the outgoing arcs of the DFA state for subset.
func (d *determinizer) successors(subset []nfa.StateID) ([]Arc, error) {
	var arcs []nfa.Arc
	for _, id := range subset {
		arcs = append(arcs, d.nfa.State(id).Arcs()...)
	}
	if len(arcs) == 0 {
		return nil, nil
	}

	labels := make([]charset.Set, len(arcs))
	for i, arc := range arcs {
		labels[i] = arc.Set
	}

	var out []Arc
	// byTarget maps a DFA state to its arc in out, so that pieces leading to
	// the same state share one arc.
	byTarget := make(map[StateID]int)
	for _, piece := range charset.Partition(labels) {
		d.targets.Clear()
		for _, arc := range arcs {
			// Each label is either a superset of piece or disjoint from it.
			if arc.Set.Intersects(piece) {
				d.targets.Insert(uint32(arc.Next))
			}
		}
		if d.targets.IsEmpty() {
			continue
		}

		next, err := d.lookup(toStateIDs(d.targets.Sorted()))
		if err != nil {
			return nil, err
		}
		if j, ok := byTarget[next]; ok {
			out[j].Set = out[j].Set.Union(piece)
			continue
		}
		byTarget[next] = len(out)
		out = append(out, Arc{Set: piece, Next: next})
	}
	return out, nil
}

// lookup returns the DFA state for a sorted subset, creating it if needed.
func (d *determinizer) lookup(subset []nfa.StateID) (StateID, error) {
	key := ComputeStateKey(subset)
	if id, ok := d.index[key]; ok {
		return id, nil
	}
	if d.maxStates > 0 && len(d.states) >= d.maxStates {
		return InvalidState, ErrStateLimitExceeded
	}

	accepting := false
	for _, id := range subset {
		if d.nfa.IsAccepting(id) {
			accepting = true
			break
		}
	}

	id := StateID(conv.IntToUint32(len(d.states)))
	d.states = append(d.states, State{
		id:        id,
		accepting: accepting,
		nfaStates: subset,
	})
	d.index[key] = id
	return id, nil
}

func toStateIDs(values []uint32) []nfa.StateID {
	ids := make([]nfa.StateID, len(values))
	for i, v := range values {
		ids[i] = nfa.StateID(v)
	}
	return ids
}
