package dfa

import (
	"log/slog"

	"github.com/bits-and-blooms/bitset"
)

// refiner computes the Myhill-Nerode partition of the states of a relation.
type refiner struct {
	index   *stateIndex
	symbols []rune

	// delta[state][symbol] is the destination id, or -1 when there is no rule.
	delta [][]int

	accepting *bitset.BitSet
}

func newRefiner(a *Automaton) *refiner {
	index := newStateIndex(a.relation.AllStates())
	symbols := a.relation.AllSymbols()

	delta := make([][]int, index.Len())
	accepting := bitset.New(uint(index.Len()))
	for s, name := range index.names {
		row := make([]int, len(symbols))
		for i, symbol := range symbols {
			row[i] = -1
			if t, ok := a.relation.Lookup(name, symbol); ok {
				row[i] = index.id(t.NextState)
			}
		}
		delta[s] = row

		if a.accept.Contains(name) {
			accepting.Set(uint(s))
		}
	}

	return &refiner{
		index:     index,
		symbols:   symbols,
		delta:     delta,
		accepting: accepting,
	}
}

// initialBlocks splits the states into accepting and rejecting ones. Empty
// blocks are left out.
func (r *refiner) initialBlocks() [][]int {
	var accept, reject []int
	for s := 0; s < r.index.Len(); s++ {
		if r.accepting.Test(uint(s)) {
			accept = append(accept, s)
		} else {
			reject = append(reject, s)
		}
	}

	blocks := make([][]int, 0, 2)
	if len(accept) > 0 {
		blocks = append(blocks, accept)
	}
	if len(reject) > 0 {
		blocks = append(blocks, reject)
	}
	return blocks
}

// indistinguishable reports whether s1 and s2 move into the same block for
// every symbol. A missing rule only agrees with another missing rule.
func (r *refiner) indistinguishable(s1, s2 int, blockOf []int) bool {
	row1, row2 := r.delta[s1], r.delta[s2]
	for i := range r.symbols {
		d1, d2 := row1[i], row2[i]
		if d1 == -1 || d2 == -1 {
			if d1 != d2 {
				return false
			}
			continue
		}
		if blockOf[d1] != blockOf[d2] {
			return false
		}
	}
	return true
}

// split runs one refinement round. Pairs within a block that no symbol tells
// apart are joined transitively; the resulting components are the new blocks.
func (r *refiner) split(blocks [][]int) [][]int {
	blockOf := make([]int, r.index.Len())
	for b, members := range blocks {
		for _, s := range members {
			blockOf[s] = b
		}
	}

	uf := newUnionFind(r.index.Len())
	for _, members := range blocks {
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				if uf.find(members[i]) == uf.find(members[j]) {
					continue
				}
				if r.indistinguishable(members[i], members[j], blockOf) {
					uf.union(members[i], members[j])
				}
			}
		}
	}
	return uf.groups()
}

// partition refines until the number of blocks stops growing. The last round
// returns the same blocks it was given, ordered by their smallest member.
func (r *refiner) partition(logger *slog.Logger) [][]int {
	blocks := r.initialBlocks()
	for round := 1; ; round++ {
		next := r.split(blocks)
		logger.Debug("refinement round",
			slog.Int("round", round),
			slog.Int("blocks", len(next)))
		if len(next) <= len(blocks) {
			return next
		}
		blocks = next
	}
}

// canonicalNames maps every member of a multi-member block to the block's
// smallest member. Ids are in lexicographic order, so that is the first one.
func (r *refiner) canonicalNames(blocks [][]int) map[string]string {
	renames := make(map[string]string)
	for _, members := range blocks {
		if len(members) <= 1 {
			continue
		}
		name := r.index.names[members[0]]
		for _, s := range members {
			renames[r.index.names[s]] = name
		}
	}
	return renames
}

// Partition returns the equivalence classes Minimize would compute, worked out
// on a pruned copy. Each class is sorted and classes are ordered by their first
// member. The automaton is not modified.
func (a *Automaton) Partition() [][]string {
	c := a.Clone()
	c.relation = c.relation.deterministic()
	c.Prune()

	r := newRefiner(c)
	blocks := r.partition(c.logger)

	classes := make([][]string, len(blocks))
	for i, members := range blocks {
		classes[i] = make([]string, len(members))
		for j, s := range members {
			classes[i][j] = r.index.names[s]
		}
	}
	return classes
}

// Minimize rewrites the automaton into the minimal automaton for the same
// language. Rules shadowed by an earlier rule for the same state and input are
// dropped and unreachable states are pruned first. Every class of equivalent
// states is collapsed into its lexicographically smallest member, and the
// transitions are renamed, sorted and deduplicated. The start and accept states
// are renamed the same way.
//
// The result maps the old name of every state in a merged class to its new
// name, the representative included. States that were not merged are absent.
func (a *Automaton) Minimize() map[string]string {
	a.relation = a.relation.deterministic()
	a.Prune()

	r := newRefiner(a)
	blocks := r.partition(a.logger)
	renames := r.canonicalNames(blocks)

	a.rewrite(renames)

	a.logger.Debug("minimized",
		slog.Int("states", len(blocks)),
		slog.Int("renamed", len(renames)),
		slog.Int("transitions", a.relation.Len()))
	return renames
}

func (a *Automaton) rewrite(renames map[string]string) {
	rename := func(state string) string {
		if name, ok := renames[state]; ok {
			return name
		}
		return state
	}

	ts := make([]Transition, 0, a.relation.Len())
	for _, t := range a.relation.transitions {
		ts = append(ts, Transition{
			State:     rename(t.State),
			Input:     t.Input,
			NextState: rename(t.NextState),
		})
	}
	SortTransitions(ts)
	ts = dedupTransitions(ts)

	accept := NewStateSet()
	for state := range a.accept.inner {
		accept.Add(rename(state))
	}

	a.relation = NewRelation(ts)
	a.start = rename(a.start)
	a.accept = accept
}
