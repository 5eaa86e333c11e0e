package grammar

import (
	"fmt"

	"github.com/aretw0/chomsky/pkg/domain"
)

// AcceptState is the name of the accepting state synthesized by ToAutomaton.
// When a non-terminal already uses it, primes are appended until the name is free.
const AcceptState = "X"

// ToAutomaton converts a right-linear regular grammar into a finite automaton.
// Non-terminals become states, terminals the alphabet, and the start symbol the
// start state. A synthesized state is the only accepting state.
//
//	A -> aB  yields  δ(A, a) ∋ B
//	A -> a   yields  δ(A, a) ∋ accept
//
// Several productions for the same (A, a) accumulate, which is how
// nondeterminism arises from a grammar. Any other production shape is
// rejected with *domain.UnsupportedProductionShapeError.
func ToAutomaton(g *domain.Grammar) (*domain.Automaton, error) {
	accept := acceptStateFor(g)
	transitions := make(domain.Transitions)

	for _, p := range g.Productions() {
		if len(p.LHS) != 1 || !g.IsNonTerminal(p.LHS[0]) {
			return nil, unsupported(p)
		}
		from := domain.State(p.LHS[0])

		switch {
		case len(p.RHS) == 2 && g.IsTerminal(p.RHS[0]) && g.IsNonTerminal(p.RHS[1]):
			transitions.Add(from, domain.Symbol(p.RHS[0]), domain.State(p.RHS[1]))
		case len(p.RHS) == 1 && g.IsTerminal(p.RHS[0]):
			transitions.Add(from, domain.Symbol(p.RHS[0]), accept)
		default:
			return nil, unsupported(p)
		}
	}

	nonTerminals := g.NonTerminals()
	states := make([]domain.State, 0, len(nonTerminals)+1)
	for _, nt := range nonTerminals {
		states = append(states, domain.State(nt))
	}
	states = append(states, accept)

	terminals := g.Terminals()
	alphabet := make([]domain.Symbol, len(terminals))
	for i, t := range terminals {
		alphabet[i] = domain.Symbol(t)
	}

	a, err := domain.NewAutomaton(states, alphabet, transitions, domain.State(g.Start()), []domain.State{accept})
	if err != nil {
		return nil, fmt.Errorf("grammar cannot be expressed as an automaton: %w", err)
	}
	return a, nil
}

func acceptStateFor(g *domain.Grammar) domain.State {
	name := AcceptState
	for g.IsNonTerminal(name) || g.IsTerminal(name) {
		name += "'"
	}
	return domain.State(name)
}

func unsupported(p domain.Production) error {
	return &domain.UnsupportedProductionShapeError{LHS: p.Head(), RHS: p.Body()}
}
