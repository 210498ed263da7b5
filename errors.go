package dfa

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNondeterministic marks a (state, symbol) pair with more than one rule.
	ErrNondeterministic = errors.New("automaton is not deterministic")

	// ErrUnknownStart marks a start state that no rule mentions although the
	// automaton has rules.
	ErrUnknownStart = errors.New("start state does not appear in any transition")

	// ErrUnknownAccept marks an accept state that no rule mentions and that is
	// not the start state, so it can never be reached.
	ErrUnknownAccept = errors.New("accept state does not appear in any transition")
)

// StateError ties one of the sentinel errors to the state (and, for
// nondeterminism, the input symbol) it was found on.
type StateError struct {
	State string
	Input rune
	Err   error
}

func (e *StateError) Error() string {
	if errors.Is(e.Err, ErrNondeterministic) {
		return fmt.Sprintf("state %q, input %q: %s", e.State, e.Input, e.Err)
	}
	return fmt.Sprintf("state %q: %s", e.State, e.Err)
}

func (e *StateError) Unwrap() error {
	return e.Err
}

// ValidationError collects every problem Validate found.
type ValidationError struct {
	Errors []error
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  %d. %s", i+1, err)
	}
	return sb.String()
}

func (e *ValidationError) Unwrap() []error {
	return e.Errors
}

// ValidationErrors returns the individual errors if err is a *ValidationError,
// nil otherwise.
func ValidationErrors(err error) []error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Errors
	}
	return nil
}
