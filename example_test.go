package dfa_test

import (
	"fmt"

	"github.com/geange/dfa"
)

func ExampleAutomaton_Check() {
	a := dfa.NewAutomaton("ones at the end", "q0", []string{"q1"}, []dfa.Transition{
		{State: "q0", Input: '0', NextState: "q0"},
		{State: "q0", Input: '1', NextState: "q1"},
		{State: "q1", Input: '1', NextState: "q1"},
	})

	fmt.Println(a.Check("000111"))
	fmt.Println(a.Check("0101"))
	// Output:
	// true [q0 q0 q0 q0 q1 q1 q1]
	// false [q0 q0 q1]
}

func ExampleAutomaton_Minimize() {
	a := dfa.NewAutomaton("", "s", []string{"x", "y"}, []dfa.Transition{
		{State: "s", Input: 'a', NextState: "x"},
		{State: "s", Input: 'b', NextState: "y"},
		{State: "x", Input: 'a', NextState: "x"},
		{State: "y", Input: 'a', NextState: "y"},
		{State: "unreachable", Input: 'a', NextState: "s"},
	})

	renames := a.Minimize()
	fmt.Println(renames)
	for _, t := range a.Transitions() {
		fmt.Println(t)
	}
	// Output:
	// map[x:x y:x]
	// s --'a'--> x
	// s --'b'--> x
	// x --'a'--> x
}
