package dfa

// Run Returns true if the given string is accepted by the automaton.
func Run(a *Automaton, s string) bool {
	return a.Test(s)
}

// Check runs the automaton over input and reports whether it accepts, together
// with the states it went through. The trace starts with the start state and
// gains one state per consumed symbol. When a symbol has no rule the run stops
// there and rejects; that symbol adds nothing to the trace.
func (a *Automaton) Check(input string) (bool, []string) {
	return a.CheckRunes([]rune(input))
}

// CheckRunes is Check over an arbitrary symbol sequence.
func (a *Automaton) CheckRunes(input []rune) (bool, []string) {
	trace := make([]string, 1, len(input)+1)
	trace[0] = a.start

	for _, r := range input {
		t, ok := a.relation.Lookup(trace[len(trace)-1], r)
		if !ok {
			return false, trace
		}
		trace = append(trace, t.NextState)
	}
	return a.accept.Contains(trace[len(trace)-1]), trace
}

// Test is Check without the trace.
func (a *Automaton) Test(input string) bool {
	return a.TestRunes([]rune(input))
}

// TestRunes is CheckRunes without the trace.
func (a *Automaton) TestRunes(input []rune) bool {
	state := a.start
	for _, r := range input {
		t, ok := a.relation.Lookup(state, r)
		if !ok {
			return false
		}
		state = t.NextState
	}
	return a.accept.Contains(state)
}
