package dfa

import (
	"log/slog"

	"github.com/bits-and-blooms/bitset"
)

// stateIndex numbers states densely in ascending order, so index order is
// also lexicographic order.
type stateIndex struct {
	names []string
	ids   map[string]int
}

func newStateIndex(states *StateSet) *stateIndex {
	names := states.GetArray()
	ids := make(map[string]int, len(names))
	for i, name := range names {
		ids[name] = i
	}
	return &stateIndex{names: names, ids: ids}
}

func (s *stateIndex) Len() int {
	return len(s.names)
}

func (s *stateIndex) id(name string) int {
	if i, ok := s.ids[name]; ok {
		return i
	}
	return -1
}

// reachable walks breadth first from the start state. A state is marked seen
// when it is queued, so each state is queued at most once.
func (a *Automaton) reachable() (*stateIndex, *bitset.BitSet) {
	states := a.relation.AllStates()
	states.Add(a.start)
	index := newStateIndex(states)

	seen := bitset.New(uint(index.Len()))
	workList := make([]string, 0)
	workList = append(workList, a.start)
	seen.Set(uint(index.id(a.start)))

	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]

		for _, t := range a.relation.Outgoing(state) {
			dest := uint(index.id(t.NextState))
			if seen.Test(dest) == false {
				seen.Set(dest)
				workList = append(workList, t.NextState)
			}
		}
	}
	return index, seen
}

// Reachable returns the states reachable from the start state, the start
// state included.
func (a *Automaton) Reachable() *StateSet {
	index, seen := a.reachable()
	live := NewStateSet()
	for i, ok := seen.NextSet(0); ok; i, ok = seen.NextSet(i + 1) {
		live.Add(index.names[i])
	}
	return live
}

// Prune drops every transition whose source or destination cannot be reached
// from the start state and returns how many were dropped. Start and accept
// states are left alone. Pruning twice is the same as pruning once.
func (a *Automaton) Prune() int {
	index, seen := a.reachable()

	pruned := a.relation.filter(func(t Transition) bool {
		return seen.Test(uint(index.id(t.State))) && seen.Test(uint(index.id(t.NextState)))
	})
	removed := a.relation.Len() - pruned.Len()
	a.relation = pruned

	if removed > 0 {
		a.logger.Debug("pruned unreachable transitions",
			slog.Int("removed", removed),
			slog.Int("reachable", int(seen.Count())))
	}
	return removed
}

// IsEmpty Returns true if the automaton accepts no strings.
func (a *Automaton) IsEmpty() bool {
	if a.accept.Size() == 0 {
		return true
	}
	if a.accept.Contains(a.start) {
		return false
	}
	for state := range a.Reachable().inner {
		if a.accept.Contains(state) {
			return false
		}
	}
	return true
}
