package dfa

import (
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type fixture struct {
	Name        string              `yaml:"name"`
	Start       string              `yaml:"start"`
	Accept      []string            `yaml:"accept"`
	Transitions []fixtureTransition `yaml:"transitions"`
}

type fixtureTransition struct {
	State string `yaml:"state"`
	Input string `yaml:"input"`
	Next  string `yaml:"next"`
}

// loadFixture builds the automaton described by testdata/<name>.yaml.
func loadFixture(t *testing.T, name string, opts ...Option) *Automaton {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name+".yaml"))
	require.NoError(t, err)

	var f fixture
	require.NoError(t, yaml.Unmarshal(data, &f))

	transitions := make([]Transition, 0, len(f.Transitions))
	for _, ft := range f.Transitions {
		require.Equal(t, 1, utf8.RuneCountInString(ft.Input), "input %q must be one symbol", ft.Input)
		r, _ := utf8.DecodeRuneInString(ft.Input)
		transitions = append(transitions, Transition{State: ft.State, Input: r, NextState: ft.Next})
	}
	return NewAutomaton(f.Name, f.Start, f.Accept, transitions, opts...)
}

// words returns every string over alphabet of length 0 to maxLen.
func words(alphabet []rune, maxLen int) []string {
	out := []string{""}
	layer := []string{""}
	for n := 0; n < maxLen; n++ {
		next := make([]string, 0, len(layer)*len(alphabet))
		for _, w := range layer {
			for _, r := range alphabet {
				next = append(next, w+string(r))
			}
		}
		out = append(out, next...)
		layer = next
	}
	return out
}
