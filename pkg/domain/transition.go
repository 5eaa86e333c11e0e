package domain

import "sort"

// Key identifies a move of the transition relation: the state the automaton
// is in and the symbol it reads.
type Key struct {
	From   State  `json:"from" yaml:"from"`
	Symbol Symbol `json:"symbol" yaml:"symbol"`
}

// Transitions is the transition relation of an automaton.
// A missing key means "no move". Destinations have set semantics.
type Transitions map[Key]StateSet

// Add records the move (from, symbol) -> to, merging with any existing
// destinations for the same key.
func (t Transitions) Add(from State, symbol Symbol, to ...State) {
	k := Key{From: from, Symbol: symbol}
	dest, ok := t[k]
	if !ok {
		dest = NewStateSet()
		t[k] = dest
	}
	for _, st := range to {
		dest.Add(st)
	}
}

// Clone returns a deep copy of the relation.
func (t Transitions) Clone() Transitions {
	c := make(Transitions, len(t))
	for k, dest := range t {
		c[k] = dest.Clone()
	}
	return c
}

// Keys returns every defined key sorted by (from, symbol).
func (t Transitions) Keys() []Key {
	keys := make([]Key, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].From != keys[j].From {
			return keys[i].From < keys[j].From
		}
		return keys[i].Symbol < keys[j].Symbol
	})
	return keys
}

// Triple is one explicit (source, symbol, destination) edge.
type Triple struct {
	From   State  `json:"from"`
	Symbol Symbol `json:"symbol"`
	To     State  `json:"to"`
}

// Triples flattens the relation into edges sorted by (from, symbol, to).
func (t Transitions) Triples() []Triple {
	out := make([]Triple, 0, len(t))
	for _, k := range t.Keys() {
		for _, to := range t[k].Sorted() {
			out = append(out, Triple{From: k.From, Symbol: k.Symbol, To: to})
		}
	}
	return out
}

// Conflict describes a key that maps to more than one destination.
type Conflict struct {
	Key          Key     `json:"key"`
	Destinations []State `json:"destinations"`
}
