package dfa

import "slices"

// Relation is the transition relation of an automaton. Rules are kept in
// insertion order; lookups go through a (state, symbol) keyed table.
//
// A Relation is never modified after NewRelation returns; operations that
// rewrite an automaton build a new Relation and swap it in.
type Relation struct {
	transitions []Transition

	// Index of the first rule for every (state, symbol) pair.
	lookup *HashMap[int]

	// Outgoing rule indexes per source state, in insertion order.
	outgoing map[string][]int

	// Rules shadowed by an earlier rule with the same (state, symbol).
	duplicates []int
}

// NewRelation builds a relation over a copy of ts. When several rules share a
// (state, symbol) pair the first one wins and the rest are recorded as
// duplicates.
func NewRelation(ts []Transition, options ...OptionsHashMap) *Relation {
	if len(options) == 0 {
		options = []OptionsHashMap{WithMapCapacity(len(ts))}
	}

	r := &Relation{
		transitions: slices.Clone(ts),
		lookup:      NewHashMap[int](options...),
		outgoing:    make(map[string][]int),
	}

	for i, t := range r.transitions {
		if !r.lookup.SetIfAbsent(t.key(), i) {
			r.duplicates = append(r.duplicates, i)
		}
		r.outgoing[t.State] = append(r.outgoing[t.State], i)
	}
	return r
}

// Lookup returns the rule for reading input in state. ok is false when there
// is none, which means the automaton rejects.
func (r *Relation) Lookup(state string, input rune) (Transition, bool) {
	i, ok := r.lookup.Get(transitionKey{state: state, input: input})
	if !ok {
		return Transition{}, false
	}
	return r.transitions[i], true
}

// Outgoing returns every rule leaving state, duplicates included.
func (r *Relation) Outgoing(state string) []Transition {
	idx := r.outgoing[state]
	out := make([]Transition, len(idx))
	for i, j := range idx {
		out[i] = r.transitions[j]
	}
	return out
}

// AllSymbols returns the working alphabet: every symbol used by some rule,
// sorted ascending.
func (r *Relation) AllSymbols() []rune {
	seen := make(map[rune]struct{})
	symbols := make([]rune, 0)
	for _, t := range r.transitions {
		if _, ok := seen[t.Input]; !ok {
			seen[t.Input] = struct{}{}
			symbols = append(symbols, t.Input)
		}
	}
	slices.Sort(symbols)
	return symbols
}

// AllStates returns every state that is the source or destination of a rule.
// States that appear only as start or accept states are not included.
func (r *Relation) AllStates() *StateSet {
	states := NewStateSet()
	for _, t := range r.transitions {
		states.Add(t.State)
		states.Add(t.NextState)
	}
	return states
}

// Transitions returns a copy of the rules in insertion order.
func (r *Relation) Transitions() []Transition {
	return slices.Clone(r.transitions)
}

// Len returns the number of rules, duplicates included.
func (r *Relation) Len() int {
	return len(r.transitions)
}

// Duplicates returns the rules that Lookup never yields because an earlier rule
// has the same state and input.
func (r *Relation) Duplicates() []Transition {
	dups := make([]Transition, len(r.duplicates))
	for i, j := range r.duplicates {
		dups[i] = r.transitions[j]
	}
	return dups
}

// IsDeterministic reports whether no (state, symbol) pair has more than one
// rule.
func (r *Relation) IsDeterministic() bool {
	return len(r.duplicates) == 0
}

// filter returns a new relation with the rules keep accepts, in the same order.
func (r *Relation) filter(keep func(Transition) bool) *Relation {
	kept := make([]Transition, 0, len(r.transitions))
	for _, t := range r.transitions {
		if keep(t) {
			kept = append(kept, t)
		}
	}
	return NewRelation(kept)
}

// deterministic returns r without the rules Lookup never yields.
func (r *Relation) deterministic() *Relation {
	if len(r.duplicates) == 0 {
		return r
	}
	return r.filter(func(t Transition) bool {
		first, _ := r.Lookup(t.State, t.Input)
		return first == t
	})
}
