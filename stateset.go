package dfa

import "slices"

// StateSet is a set of state identifiers. The zero value is not usable; use
// NewStateSet.
type StateSet struct {
	inner       map[string]struct{}
	hashUpdated bool
	hashCode    uint64
}

func NewStateSet(states ...string) *StateSet {
	s := &StateSet{
		inner: make(map[string]struct{}, len(states)),
	}
	for _, state := range states {
		s.inner[state] = struct{}{}
	}
	return s
}

// Hash is independent of insertion order. It is cached until the set changes.
func (s *StateSet) Hash() uint64 {
	if s.hashUpdated {
		return s.hashCode
	}
	s.hashCode = uint64(len(s.inner))
	for state := range s.inner {
		s.hashCode += uint64(uint32(mix(int(hashString(state)))))
	}
	s.hashUpdated = true
	return s.hashCode
}

// Equals reports whether both sets hold exactly the same states.
func (s *StateSet) Equals(other *StateSet) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.inner) != len(other.inner) || s.Hash() != other.Hash() {
		return false
	}
	for state := range s.inner {
		if _, ok := other.inner[state]; !ok {
			return false
		}
	}
	return true
}

// GetArray returns the states sorted ascending.
func (s *StateSet) GetArray() []string {
	keys := make([]string, 0, len(s.inner))

	for k := range s.inner {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (s *StateSet) Size() int {
	return len(s.inner)
}

func (s *StateSet) Contains(state string) bool {
	_, ok := s.inner[state]
	return ok
}

func (s *StateSet) keyChanged() {
	s.hashUpdated = false
	s.hashCode = 0
}

// Add inserts state and reports whether it was new.
func (s *StateSet) Add(state string) bool {
	if _, ok := s.inner[state]; ok {
		return false
	}
	s.inner[state] = struct{}{}
	s.keyChanged()
	return true
}

// Remove deletes state and reports whether it was present.
func (s *StateSet) Remove(state string) bool {
	if _, ok := s.inner[state]; !ok {
		return false
	}
	delete(s.inner, state)
	s.keyChanged()
	return true
}

func (s *StateSet) Clone() *StateSet {
	c := &StateSet{
		inner:       make(map[string]struct{}, len(s.inner)),
		hashUpdated: s.hashUpdated,
		hashCode:    s.hashCode,
	}
	for state := range s.inner {
		c.inner[state] = struct{}{}
	}
	return c
}

// Union returns a new set with the states of s and other.
func (s *StateSet) Union(other *StateSet) *StateSet {
	u := s.Clone()
	for state := range other.inner {
		u.Add(state)
	}
	return u
}

// Difference returns a new set with the states of s that are not in other.
func (s *StateSet) Difference(other *StateSet) *StateSet {
	d := NewStateSet()
	for state := range s.inner {
		if !other.Contains(state) {
			d.inner[state] = struct{}{}
		}
	}
	return d
}
