package dfa

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestCheck(t *testing.T) {
	a := loadFixture(t, "ends_with_ones")

	tests := []struct {
		name      string
		input     string
		want      bool
		wantTrace []string
	}{
		{"all ones at the end", "000111", true, []string{"q0", "q0", "q0", "q0", "q1", "q1", "q1"}},
		{"does not end with 1", "00010", false, []string{"q0", "q0", "q0", "q0", "q1"}},
		{"1 before 0", "0101", false, []string{"q0", "q0", "q1"}},
		{"empty input", "", false, []string{"q0"}},
		{"single 1", "1", true, []string{"q0", "q1"}},
		{"unknown symbol", "0x1", false, []string{"q0", "q0"}},
		{"unknown first symbol", "x", false, []string{"q0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, trace := a.Check(tt.input)
			assert.Equalf(t, tt.want, got, "Check(%q)", tt.input)
			assert.Equal(t, tt.wantTrace, trace)
			assert.Equal(t, got, a.Test(tt.input))
			assert.Equal(t, got, Run(a, tt.input))
		})
	}
}

func TestCheckTraceStopsAtMissingRule(t *testing.T) {
	a := loadFixture(t, "ends_with_ones")

	// "0011" consumes four symbols, the trailing "0" has no rule from q1
	ok, trace := a.Check("00110")
	assert.False(t, ok)
	assert.Len(t, trace, 5)
	assert.Equal(t, "q1", trace[len(trace)-1])
}

func TestCheckRunes(t *testing.T) {
	a := defaultAutomata.MakeString("日本")

	ok, trace := a.CheckRunes([]rune{'日', '本'})
	assert.True(t, ok)
	assert.Equal(t, []string{"q0", "q1", "q2"}, trace)
	assert.True(t, a.TestRunes([]rune("日本")))

	ok, trace = a.CheckRunes(nil)
	assert.False(t, ok)
	assert.Equal(t, []string{"q0"}, trace)
	assert.False(t, a.TestRunes(nil))
}

func TestCheckStartWithoutTransitions(t *testing.T) {
	a := NewAutomaton("trivial", "only", []string{"only"}, nil)

	ok, trace := a.Check("")
	assert.True(t, ok)
	assert.Equal(t, []string{"only"}, trace)

	ok, trace = a.Check("a")
	assert.False(t, ok)
	assert.Equal(t, []string{"only"}, trace)
}

func TestCheckFirstMatchWins(t *testing.T) {
	a := NewAutomaton("", "q0", []string{"q0"}, []Transition{
		{"q0", 'a', "q0"},
		{"q0", 'a', "q1"},
	})

	ok, trace := a.Check("aa")
	assert.True(t, ok)
	assert.Equal(t, []string{"q0", "q0", "q0"}, trace)
}

func TestCheckConcurrentReaders(t *testing.T) {
	a := loadFixture(t, "minimizable")
	inputs := words([]rune("ab"), 6)

	want := make(map[string]bool, len(inputs))
	for _, w := range inputs {
		want[w] = a.Test(w)
	}

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			for _, w := range inputs {
				got, trace := a.Check(w)
				if got != want[w] {
					return fmt.Errorf("reader %d: Check(%q) = %v", i, w, got)
				}
				if got && len(trace) != len([]rune(w))+1 {
					return fmt.Errorf("reader %d: trace %v for %q", i, trace, w)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
