package domain

import (
	"sort"
	"strconv"
	"strings"
)

// State is an opaque automaton state identifier.
// Subset construction produces composite states whose identifiers are
// canonical labels such as "{q0,q1}".
type State string

// Symbol is a single alphabet character.
type Symbol string

// StateSet is a set of states. The zero value is not usable; use NewStateSet.
type StateSet map[State]struct{}

// NewStateSet creates a set holding the given states. Duplicates collapse.
func NewStateSet(states ...State) StateSet {
	s := make(StateSet, len(states))
	for _, st := range states {
		s[st] = struct{}{}
	}
	return s
}

// Add inserts the state into the set.
func (s StateSet) Add(st State) {
	s[st] = struct{}{}
}

// Contains reports whether st is a member of the set.
func (s StateSet) Contains(st State) bool {
	_, ok := s[st]
	return ok
}

// Len returns the cardinality of the set.
func (s StateSet) Len() int {
	return len(s)
}

// Union adds every member of other to s.
func (s StateSet) Union(other StateSet) {
	for st := range other {
		s[st] = struct{}{}
	}
}

// Intersects reports whether the two sets share at least one member.
func (s StateSet) Intersects(other StateSet) bool {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for st := range small {
		if large.Contains(st) {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the set.
func (s StateSet) Clone() StateSet {
	c := make(StateSet, len(s))
	for st := range s {
		c[st] = struct{}{}
	}
	return c
}

// Equal reports whether both sets hold exactly the same members.
func (s StateSet) Equal(other StateSet) bool {
	if len(s) != len(other) {
		return false
	}
	for st := range s {
		if !other.Contains(st) {
			return false
		}
	}
	return true
}

// Sorted returns the members in lexical order.
func (s StateSet) Sorted() []State {
	out := make([]State, 0, len(s))
	for st := range s {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Label renders the set as its canonical composite name: members sorted
// lexically, comma-joined and wrapped in braces (e.g. "{q0,q1}").
func (s StateSet) Label() State {
	members := s.Sorted()
	parts := make([]string, len(members))
	for i, st := range members {
		parts[i] = string(st)
	}
	return State("{" + strings.Join(parts, ",") + "}")
}

// Key identifies the set by its members. Unlike Label it stays unambiguous
// when state names contain braces or commas.
func (s StateSet) Key() string {
	var sb strings.Builder
	for _, st := range s.Sorted() {
		sb.WriteString(strconv.Itoa(len(st)))
		sb.WriteByte(':')
		sb.WriteString(string(st))
	}
	return sb.String()
}

// SortedSymbols returns the given symbols in lexical order.
func SortedSymbols(symbols map[Symbol]struct{}) []Symbol {
	out := make([]Symbol, 0, len(symbols))
	for sym := range symbols {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
