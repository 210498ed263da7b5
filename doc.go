/*
Package dfa represents deterministic finite automata, runs them over input and
minimizes them.

An Automaton is built once from a start state, a set of accept states and a
list of Transitions. States are plain strings and input symbols are runes. The
transition relation is a lookup table keyed by (state, symbol); the working
alphabet and the state set are derived from the rules themselves.

	a := dfa.NewAutomaton("ends with 1", "q0", []string{"q1"}, []dfa.Transition{
		{State: "q0", Input: '0', NextState: "q0"},
		{State: "q0", Input: '1', NextState: "q1"},
		{State: "q1", Input: '1', NextState: "q1"},
	})
	ok, trace := a.Check("0011") // true, [q0 q0 q0 q1 q1]

A symbol with no rule is not an error: the run stops and rejects. When several
rules share a state and symbol, the first one given wins; Validate reports such
rules without changing behavior.

Minimize first drops everything unreachable from the start state, then
computes the Myhill-Nerode classes by partition refinement and collapses each
class into its lexicographically smallest member. It returns the renaming it
applied.

Check, Test and the other read-only methods are safe for concurrent use.
Prune and Minimize rewrite the automaton and need exclusive access.
*/
package dfa
