package dsl

import (
	"fmt"

	"github.com/aretw0/chomsky/pkg/domain"
)

// GrammarBuilder manages grammar construction.
type GrammarBuilder struct {
	terminals    []string
	nonTerminals []string
	rules        []*RuleBuilder
	start        string
}

// NewGrammar creates a builder over the given terminals.
func NewGrammar(terminals ...string) *GrammarBuilder {
	return &GrammarBuilder{terminals: append([]string(nil), terminals...)}
}

// NonTerminals declares non-terminal symbols.
func (g *GrammarBuilder) NonTerminals(symbols ...string) *GrammarBuilder {
	g.nonTerminals = append(g.nonTerminals, symbols...)
	return g
}

// Terminals declares additional terminal symbols.
func (g *GrammarBuilder) Terminals(symbols ...string) *GrammarBuilder {
	g.terminals = append(g.terminals, symbols...)
	return g
}

// StartSymbol sets the start symbol.
func (g *GrammarBuilder) StartSymbol(symbol string) *GrammarBuilder {
	g.start = symbol
	return g
}

// Rule opens the productions for a left-hand side. The left-hand side is
// split into declared symbols like any right-hand side, so "AB" is allowed
// for unrestricted grammars.
func (g *GrammarBuilder) Rule(lhs string) *RuleBuilder {
	rb := &RuleBuilder{lhs: lhs, builder: g}
	g.rules = append(g.rules, rb)
	return rb
}

// Build tokenizes every rule and validates the grammar.
func (g *GrammarBuilder) Build() (*domain.Grammar, error) {
	symbols := append(append([]string(nil), g.terminals...), g.nonTerminals...)

	var productions []domain.Production
	for _, rb := range g.rules {
		lhs, err := domain.Tokenize(rb.lhs, symbols)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", rb.lhs, err)
		}
		for _, alt := range rb.alternatives {
			rhs, err := domain.Tokenize(alt, symbols)
			if err != nil {
				return nil, fmt.Errorf("rule %q: %w", rb.lhs, err)
			}
			productions = append(productions, domain.Production{LHS: lhs, RHS: rhs})
		}
	}

	return domain.NewGrammar(g.nonTerminals, g.terminals, productions, g.start)
}

// RuleBuilder provides a fluent API for the alternatives of one left-hand side.
type RuleBuilder struct {
	lhs          string
	alternatives []string
	builder      *GrammarBuilder
}

// To appends alternatives in order. "ε" or "" denote the empty string.
func (r *RuleBuilder) To(alternatives ...string) *RuleBuilder {
	r.alternatives = append(r.alternatives, alternatives...)
	return r
}

// Epsilon appends the empty alternative.
func (r *RuleBuilder) Epsilon() *RuleBuilder {
	r.alternatives = append(r.alternatives, domain.Epsilon)
	return r
}

// Start makes this rule's left-hand side the start symbol.
func (r *RuleBuilder) Start() *RuleBuilder {
	r.builder.start = r.lhs
	return r
}
