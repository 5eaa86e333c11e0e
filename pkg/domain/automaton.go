package domain

import (
	"fmt"
	"unicode/utf8"
)

// Automaton is a finite automaton. Deterministic and nondeterministic
// automata share this representation; determinism is a property of the
// transition relation, not of the type.
//
// An Automaton is immutable once constructed. Accessors return copies.
type Automaton struct {
	states      StateSet
	alphabet    map[Symbol]struct{}
	transitions Transitions
	start       State
	finals      StateSet
}

// NewAutomaton builds an automaton from explicit sets. Inputs are copied,
// so later changes by the caller do not leak into the automaton.
//
// Every structural problem is reported at once in an *InvalidAutomatonError:
// start and final states must be declared states, every move must read a
// declared symbol and lead to declared states, and symbols must be single
// characters.
func NewAutomaton(states []State, alphabet []Symbol, transitions Transitions, start State, finals []State) (*Automaton, error) {
	a := &Automaton{
		states:      NewStateSet(states...),
		alphabet:    make(map[Symbol]struct{}, len(alphabet)),
		transitions: transitions.Clone(),
		start:       start,
		finals:      NewStateSet(finals...),
	}
	for _, sym := range alphabet {
		a.alphabet[sym] = struct{}{}
	}

	if issues := a.check(); len(issues) > 0 {
		return nil, &InvalidAutomatonError{Issues: issues}
	}
	return a, nil
}

func (a *Automaton) check() []Issue {
	var issues []Issue

	if len(a.states) == 0 {
		issues = append(issues, Issue{Field: "states", Reason: "at least one state is required"})
	}
	for _, sym := range SortedSymbols(a.alphabet) {
		if utf8.RuneCountInString(string(sym)) != 1 {
			issues = append(issues, Issue{Field: "alphabet", Reason: fmt.Sprintf("symbol %q must be a single character", sym)})
		}
	}
	if !a.states.Contains(a.start) {
		issues = append(issues, Issue{Field: "start", Reason: fmt.Sprintf("start state %q is not a declared state", a.start)})
	}
	for _, f := range a.finals.Sorted() {
		if !a.states.Contains(f) {
			issues = append(issues, Issue{Field: "finals", Reason: fmt.Sprintf("final state %q is not a declared state", f)})
		}
	}
	for _, k := range a.transitions.Keys() {
		where := fmt.Sprintf("δ(%s, %s)", k.From, k.Symbol)
		if !a.states.Contains(k.From) {
			issues = append(issues, Issue{Field: "transitions", Reason: fmt.Sprintf("%s: source %q is not a declared state", where, k.From)})
		}
		if !a.HasSymbol(k.Symbol) {
			issues = append(issues, Issue{Field: "transitions", Reason: fmt.Sprintf("%s: symbol %q is not in the alphabet", where, k.Symbol)})
		}
		dest := a.transitions[k]
		if dest.Len() == 0 {
			issues = append(issues, Issue{Field: "transitions", Reason: fmt.Sprintf("%s: empty destination set", where)})
		}
		for _, to := range dest.Sorted() {
			if !a.states.Contains(to) {
				issues = append(issues, Issue{Field: "transitions", Reason: fmt.Sprintf("%s: destination %q is not a declared state", where, to)})
			}
		}
	}
	return issues
}

// Start returns the start state.
func (a *Automaton) Start() State {
	return a.start
}

// States returns the declared states in lexical order.
func (a *Automaton) States() []State {
	return a.states.Sorted()
}

// Alphabet returns the declared symbols in lexical order.
func (a *Automaton) Alphabet() []Symbol {
	return SortedSymbols(a.alphabet)
}

// Finals returns the accepting states in lexical order.
func (a *Automaton) Finals() []State {
	return a.finals.Sorted()
}

// FinalSet returns a copy of the accepting states.
func (a *Automaton) FinalSet() StateSet {
	return a.finals.Clone()
}

// HasState reports whether st is a declared state.
func (a *Automaton) HasState(st State) bool {
	return a.states.Contains(st)
}

// HasSymbol reports whether sym belongs to the alphabet.
func (a *Automaton) HasSymbol(sym Symbol) bool {
	_, ok := a.alphabet[sym]
	return ok
}

// IsFinal reports whether st is an accepting state.
func (a *Automaton) IsFinal(st State) bool {
	return a.finals.Contains(st)
}

// Step returns the destinations of (st, sym). The result is empty when no
// move is defined and is always safe to modify.
func (a *Automaton) Step(st State, sym Symbol) StateSet {
	dest, ok := a.transitions[Key{From: st, Symbol: sym}]
	if !ok {
		return NewStateSet()
	}
	return dest.Clone()
}

// Transitions returns a deep copy of the transition relation.
func (a *Automaton) Transitions() Transitions {
	return a.transitions.Clone()
}

// Triples returns every edge sorted by (source, symbol, destination).
func (a *Automaton) Triples() []Triple {
	return a.transitions.Triples()
}

// TransitionCount returns the number of defined (state, symbol) keys.
func (a *Automaton) TransitionCount() int {
	return len(a.transitions)
}
