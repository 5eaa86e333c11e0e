package schema

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/aretw0/chomsky/pkg/domain"
)

// BuildAutomaton converts the automaton payload into a domain.Automaton.
func (d *Definition) BuildAutomaton() (*domain.Automaton, error) {
	if d.Automaton == nil {
		return nil, fmt.Errorf("definition %q is a %s, not an automaton", d.Name, d.Kind)
	}
	return d.Automaton.Build()
}

// BuildGrammar converts the grammar payload into a domain.Grammar.
func (d *Definition) BuildGrammar() (*domain.Grammar, error) {
	if d.Grammar == nil {
		return nil, fmt.Errorf("definition %q is a %s, not a grammar", d.Name, d.Kind)
	}
	return d.Grammar.Build()
}

// Build converts the spec into a domain.Automaton.
func (s *AutomatonSpec) Build() (*domain.Automaton, error) {
	states := make([]domain.State, len(s.States))
	for i, st := range s.States {
		states[i] = domain.State(st)
	}
	alphabet := make([]domain.Symbol, len(s.Alphabet))
	for i, sym := range s.Alphabet {
		alphabet[i] = domain.Symbol(sym)
	}
	finals := make([]domain.State, len(s.Finals))
	for i, st := range s.Finals {
		finals[i] = domain.State(st)
	}

	transitions := make(domain.Transitions)
	for _, t := range s.Transitions {
		to := make([]domain.State, len(t.To))
		for i, st := range t.To {
			to[i] = domain.State(st)
		}
		transitions.Add(domain.State(t.From), domain.Symbol(t.Symbol), to...)
	}

	return domain.NewAutomaton(states, alphabet, transitions, domain.State(s.Start), finals)
}

// Build converts the spec into a domain.Grammar. Left-hand sides are
// processed in lexical order; alternatives keep their written order.
func (s *GrammarSpec) Build() (*domain.Grammar, error) {
	symbols := append(append([]string(nil), s.Terminals...), s.NonTerminals...)

	heads := make([]string, 0, len(s.Rules))
	for lhs := range s.Rules {
		heads = append(heads, lhs)
	}
	sort.Strings(heads)

	var productions []domain.Production
	for _, head := range heads {
		lhs, err := domain.Tokenize(head, symbols)
		if err != nil {
			return nil, fmt.Errorf("rules[%s]: %w", head, err)
		}
		for _, alt := range s.Rules[head] {
			rhs, err := domain.Tokenize(alt, symbols)
			if err != nil {
				return nil, fmt.Errorf("rules[%s]: %w", head, err)
			}
			productions = append(productions, domain.Production{LHS: lhs, RHS: rhs})
		}
	}

	return domain.NewGrammar(s.NonTerminals, s.Terminals, productions, s.Start)
}

// FromAutomaton captures a as an automaton definition.
func FromAutomaton(name string, a *domain.Automaton) *Definition {
	spec := &AutomatonSpec{
		Start:       string(a.Start()),
		States:      []string{},
		Alphabet:    []string{},
		Finals:      []string{},
		Transitions: []TransitionSpec{},
	}
	for _, st := range a.States() {
		spec.States = append(spec.States, string(st))
	}
	for _, sym := range a.Alphabet() {
		spec.Alphabet = append(spec.Alphabet, string(sym))
	}
	for _, st := range a.Finals() {
		spec.Finals = append(spec.Finals, string(st))
	}

	tr := a.Transitions()
	for _, k := range tr.Keys() {
		t := TransitionSpec{From: string(k.From), Symbol: string(k.Symbol)}
		for _, to := range tr[k].Sorted() {
			t.To = append(t.To, string(to))
		}
		spec.Transitions = append(spec.Transitions, t)
	}

	return &Definition{Kind: KindAutomaton, Name: name, Automaton: spec}
}

// FromGrammar captures g as a grammar definition. Sides are written without
// separators unless that would read back as different symbols, in which case
// they are space-separated.
func FromGrammar(name string, g *domain.Grammar) *Definition {
	spec := &GrammarSpec{
		NonTerminals: g.NonTerminals(),
		Terminals:    g.Terminals(),
		Start:        g.Start(),
		Rules:        make(map[string][]string),
	}
	symbols := append(g.Terminals(), g.NonTerminals()...)
	for _, p := range g.Productions() {
		head := spell(p.Head(), p.LHS, symbols)
		spec.Rules[head] = append(spec.Rules[head], spell(p.Body(), p.RHS, symbols))
	}
	return &Definition{Kind: KindGrammar, Name: name, Grammar: spec}
}

// spell returns joined when it tokenizes back to seq.
func spell(joined string, seq, symbols []string) string {
	if tokens, err := domain.Tokenize(joined, symbols); err == nil && slices.Equal(tokens, seq) {
		return joined
	}
	return strings.Join(seq, " ")
}
