package dfa

import (
	"fmt"
	"log/slog"
)

// Automaton is a deterministic finite automaton with string state identifiers
// and rune input symbols. The name is only used for diagnostics.
//
// Check, Test and the introspection methods only read the automaton and may be
// called from many goroutines at once. Prune and Minimize rewrite it in place;
// the caller must hold exclusive access while they run.
type Automaton struct {
	name  string
	start string

	// States in which the automaton accepts once the input is consumed. They
	// need not appear in any transition.
	accept *StateSet

	// Replaced wholesale by Prune and Minimize, never edited.
	relation *Relation

	logger *slog.Logger
}

// NewAutomaton creates an automaton from fully formed parts. Nothing is
// validated; see Validate.
func NewAutomaton(name, start string, accept []string, transitions []Transition, opts ...Option) *Automaton {
	o := newOptions(opts...)

	var relation *Relation
	if o.capacity >= 0 {
		relation = NewRelation(transitions, WithMapCapacity(o.capacity))
	} else {
		relation = NewRelation(transitions)
	}

	return &Automaton{
		name:     name,
		start:    start,
		accept:   NewStateSet(accept...),
		relation: relation,
		logger:   o.logger.With(slog.String("automaton", name)),
	}
}

func (a *Automaton) Name() string {
	return a.name
}

func (a *Automaton) Start() string {
	return a.start
}

// AcceptStates returns the accept states sorted ascending.
func (a *Automaton) AcceptStates() []string {
	return a.accept.GetArray()
}

// IsAccept Returns true if this state is an accept state.
func (a *Automaton) IsAccept(state string) bool {
	return a.accept.Contains(state)
}

// Transitions returns a copy of the transition relation in its current order.
func (a *Automaton) Transitions() []Transition {
	return a.relation.Transitions()
}

// Lookup returns the rule for reading input in state, if any.
func (a *Automaton) Lookup(state string, input rune) (Transition, bool) {
	return a.relation.Lookup(state, input)
}

// AllSymbols returns every symbol used by some transition, sorted.
func (a *Automaton) AllSymbols() []rune {
	return a.relation.AllSymbols()
}

// AllStates returns every state that is the source or destination of some
// transition.
func (a *Automaton) AllStates() *StateSet {
	return a.relation.AllStates()
}

// GetNumStates How many states the transition relation mentions.
func (a *Automaton) GetNumStates() int {
	return a.relation.AllStates().Size()
}

// GetNumTransitions How many transitions this automaton has.
func (a *Automaton) GetNumTransitions() int {
	return a.relation.Len()
}

// IsDeterministic Returns true if no state has two transitions leaving with the
// same label.
func (a *Automaton) IsDeterministic() bool {
	return a.relation.IsDeterministic()
}

// Clone returns an independent copy. Rewriting the copy does not affect a.
func (a *Automaton) Clone() *Automaton {
	return &Automaton{
		name:     a.name,
		start:    a.start,
		accept:   a.accept.Clone(),
		relation: a.relation,
		logger:   a.logger,
	}
}

// Validate reports configurations the engine tolerates but that usually mean
// the automaton was built wrong: duplicate (state, symbol) rules, a start state
// unknown to a non-empty relation, and accept states that no rule mentions.
// The returned error is a *ValidationError; test it with errors.Is against
// ErrNondeterministic, ErrUnknownStart or ErrUnknownAccept.
func (a *Automaton) Validate() error {
	var errs []error

	for _, t := range a.relation.Duplicates() {
		errs = append(errs, &StateError{State: t.State, Input: t.Input, Err: ErrNondeterministic})
	}

	states := a.relation.AllStates()
	if a.relation.Len() > 0 && !states.Contains(a.start) {
		errs = append(errs, &StateError{State: a.start, Err: ErrUnknownStart})
	}

	for _, s := range a.accept.GetArray() {
		if s != a.start && !states.Contains(s) {
			errs = append(errs, &StateError{State: s, Err: ErrUnknownAccept})
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func (a *Automaton) String() string {
	return fmt.Sprintf("%s(start=%s, accept=%v, states=%d, transitions=%d)",
		a.name, a.start, a.accept.GetArray(), a.GetNumStates(), a.GetNumTransitions())
}
