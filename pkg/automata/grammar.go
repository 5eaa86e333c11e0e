package automata

import (
	"fmt"

	"github.com/aretw0/chomsky/pkg/domain"
)

// ToGrammar converts a into a right-linear regular grammar. Each state
// becomes a non-terminal, each symbol a terminal, and the start state the
// start symbol. A state whose name is also an alphabet symbol is primed
// ("0'") until the name is free.
//
// Every edge src -σ-> dest yields src -> σ dest. When dest accepts, the
// shorter src -> σ is emitted as well. Productions are not deduplicated and
// are ordered by (src, σ, dest).
func ToGrammar(a *domain.Automaton) (*domain.Grammar, error) {
	alphabet := a.Alphabet()
	terminals := make([]string, len(alphabet))
	for i, sym := range alphabet {
		terminals[i] = string(sym)
	}

	names := nonTerminalNames(a)
	nonTerminals := make([]string, 0, len(names))
	for _, st := range a.States() {
		nonTerminals = append(nonTerminals, names[st])
	}

	var productions []domain.Production
	for _, edge := range a.Triples() {
		lhs, sym, dest := names[edge.From], string(edge.Symbol), names[edge.To]
		productions = append(productions, domain.NewProduction(lhs, sym, dest))
		if a.IsFinal(edge.To) {
			productions = append(productions, domain.NewProduction(lhs, sym))
		}
	}

	g, err := domain.NewGrammar(nonTerminals, terminals, productions, names[a.Start()])
	if err != nil {
		return nil, fmt.Errorf("automaton cannot be expressed as a grammar: %w", err)
	}
	return g, nil
}

// nonTerminalNames maps each state to its non-terminal.
func nonTerminalNames(a *domain.Automaton) map[domain.State]string {
	taken := make(map[string]bool)
	for _, sym := range a.Alphabet() {
		taken[string(sym)] = true
	}
	for _, st := range a.States() {
		if !a.HasSymbol(domain.Symbol(st)) {
			taken[string(st)] = true
		}
	}

	names := make(map[domain.State]string)
	for _, st := range a.States() {
		name := string(st)
		if a.HasSymbol(domain.Symbol(st)) {
			for taken[name] {
				name += "'"
			}
			taken[name] = true
		}
		names[st] = name
	}
	return names
}
