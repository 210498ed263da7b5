package dfa

import (
	"slices"
	"strconv"
)

// Automata builds small automata. State names are q0, q1, ... with q0 the
// start state.
type Automata struct {
}

var defaultAutomata = &Automata{}

func stateName(i int) string {
	return "q" + strconv.Itoa(i)
}

// MakeEmpty
// Returns a new (deterministic) automaton with the empty language.
func (*Automata) MakeEmpty() *Automaton {
	return NewAutomaton("empty", stateName(0), nil, nil)
}

// MakeEmptyString
// Returns a new (deterministic) automaton that accepts only the empty string.
func (*Automata) MakeEmptyString() *Automaton {
	return NewAutomaton("empty string", stateName(0), []string{stateName(0)}, nil)
}

// MakeAnyString
// Returns a new (deterministic) automaton that accepts all strings over alphabet.
func (*Automata) MakeAnyString(alphabet []rune) *Automaton {
	s := stateName(0)
	symbols := slices.Clone(alphabet)
	slices.Sort(symbols)
	symbols = slices.Compact(symbols)

	transitions := make([]Transition, 0, len(symbols))
	for _, r := range symbols {
		transitions = append(transitions, Transition{State: s, Input: r, NextState: s})
	}
	return NewAutomaton("any string", s, []string{s}, transitions)
}

// MakeString
// Returns a new (deterministic) automaton that accepts only s.
func (*Automata) MakeString(s string) *Automaton {
	runes := []rune(s)
	transitions := make([]Transition, 0, len(runes))
	for i, r := range runes {
		transitions = append(transitions, Transition{
			State:     stateName(i),
			Input:     r,
			NextState: stateName(i + 1),
		})
	}
	return NewAutomaton(strconv.Quote(s), stateName(0), []string{stateName(len(runes))}, transitions)
}
