package dfa

import (
	"cmp"
	"fmt"
	"sort"
)

// Transition is one rule of the transition relation: reading Input in State
// moves the automaton to NextState.
type Transition struct {
	State     string
	Input     rune
	NextState string
}

// Compare orders transitions by state, then input, then next state.
func (t Transition) Compare(o Transition) int {
	if c := cmp.Compare(t.State, o.State); c != 0 {
		return c
	}
	if c := cmp.Compare(t.Input, o.Input); c != 0 {
		return c
	}
	return cmp.Compare(t.NextState, o.NextState)
}

func (t Transition) String() string {
	return fmt.Sprintf("%s --%q--> %s", t.State, t.Input, t.NextState)
}

func (t Transition) key() transitionKey {
	return transitionKey{state: t.State, input: t.Input}
}

// SortTransitions sorts ts in place by Compare.
func SortTransitions(ts []Transition) {
	sort.Sort(stateInputNextSorter(ts))
}

// Sorts transitions by state ascending, then input ascending, then next state ascending
type stateInputNextSorter []Transition

func (r stateInputNextSorter) Len() int {
	return len(r)
}

func (r stateInputNextSorter) Less(i, j int) bool {
	return r[i].Compare(r[j]) < 0
}

func (r stateInputNextSorter) Swap(i, j int) {
	r[i], r[j] = r[j], r[i]
}

// dedupTransitions removes adjacent equal transitions from a sorted slice,
// reusing its backing array.
func dedupTransitions(ts []Transition) []Transition {
	if len(ts) < 2 {
		return ts
	}
	upto := 1
	for i := 1; i < len(ts); i++ {
		if ts[i] != ts[upto-1] {
			ts[upto] = ts[i]
			upto++
		}
	}
	return ts[:upto]
}

var _ Hashable = transitionKey{}

// transitionKey is the (state, symbol) lookup key of the relation.
type transitionKey struct {
	state string
	input rune
}

func (k transitionKey) Hash() uint64 {
	h := uint64(uint32(mix32(int(hashString(k.state)))))
	return mixPhi(h<<32 | uint64(uint32(mix32(int(k.input)))))
}

func (k transitionKey) Equals(other Hashable) bool {
	o, ok := other.(transitionKey)
	return ok && k == o
}
