package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Production is a rewriting rule LHS -> RHS. Both sides are sequences of
// grammar symbols; an empty RHS is the empty string (ε).
type Production struct {
	LHS []string `json:"lhs" yaml:"lhs"`
	RHS []string `json:"rhs" yaml:"rhs"`
}

// NewProduction creates a production with a single-symbol left-hand side.
func NewProduction(lhs string, rhs ...string) Production {
	return Production{LHS: []string{lhs}, RHS: rhs}
}

// Head returns the left-hand side rendered as a string.
func (p Production) Head() string {
	return strings.Join(p.LHS, "")
}

// Body returns the right-hand side rendered as a string ("ε" when empty).
func (p Production) Body() string {
	if len(p.RHS) == 0 {
		return Epsilon
	}
	return strings.Join(p.RHS, "")
}

// IsEmpty reports whether the right-hand side derives the empty string.
func (p Production) IsEmpty() bool {
	return len(p.RHS) == 0
}

func (p Production) String() string {
	return p.Head() + " -> " + p.Body()
}

func (p Production) clone() Production {
	return Production{
		LHS: append([]string(nil), p.LHS...),
		RHS: append([]string(nil), p.RHS...),
	}
}

// Grammar is a formal grammar: non-terminals, terminals, an ordered list of
// productions and a start symbol. Symbols are strings so that automaton
// states such as "q0" can act as non-terminals.
//
// A Grammar is immutable once constructed. Production order is preserved
// because it drives reproducible string generation.
type Grammar struct {
	nonTerminals map[string]struct{}
	terminals    map[string]struct{}
	productions  []Production
	start        string
}

// NewGrammar builds a grammar from explicit sets. Inputs are copied.
// Problems are reported together in an *InvalidGrammarError.
func NewGrammar(nonTerminals, terminals []string, productions []Production, start string) (*Grammar, error) {
	g := &Grammar{
		nonTerminals: toSet(nonTerminals),
		terminals:    toSet(terminals),
		productions:  make([]Production, 0, len(productions)),
		start:        start,
	}
	for _, p := range productions {
		g.productions = append(g.productions, p.clone())
	}

	if issues := g.check(); len(issues) > 0 {
		return nil, &InvalidGrammarError{Issues: issues}
	}
	return g, nil
}

func (g *Grammar) check() []Issue {
	var issues []Issue

	if _, ok := g.nonTerminals[g.start]; !ok {
		issues = append(issues, Issue{Field: "start", Reason: fmt.Sprintf("start symbol %q is not a declared non-terminal", g.start)})
	}
	for _, t := range sortedKeys(g.terminals) {
		if t == "" || t == Epsilon {
			issues = append(issues, Issue{Field: "terminals", Reason: fmt.Sprintf("%q cannot be used as a terminal", t)})
		}
		if _, clash := g.nonTerminals[t]; clash {
			issues = append(issues, Issue{Field: "terminals", Reason: fmt.Sprintf("symbol %q is declared both terminal and non-terminal", t)})
		}
	}
	for _, nt := range sortedKeys(g.nonTerminals) {
		if nt == "" || nt == Epsilon {
			issues = append(issues, Issue{Field: "non_terminals", Reason: fmt.Sprintf("%q cannot be used as a non-terminal", nt)})
		}
	}
	for _, p := range g.productions {
		if len(p.LHS) == 0 {
			issues = append(issues, Issue{Field: "productions", Reason: fmt.Sprintf("%s: empty left-hand side", p)})
		}
		for _, sym := range append(append([]string(nil), p.LHS...), p.RHS...) {
			if !g.IsTerminal(sym) && !g.IsNonTerminal(sym) {
				issues = append(issues, Issue{Field: "productions", Reason: fmt.Sprintf("%s: undeclared symbol %q", p, sym)})
			}
		}
	}
	return issues
}

// Start returns the start symbol.
func (g *Grammar) Start() string {
	return g.start
}

// NonTerminals returns the non-terminals in lexical order.
func (g *Grammar) NonTerminals() []string {
	return sortedKeys(g.nonTerminals)
}

// Terminals returns the terminals in lexical order.
func (g *Grammar) Terminals() []string {
	return sortedKeys(g.terminals)
}

// IsTerminal reports whether sym is a declared terminal.
func (g *Grammar) IsTerminal(sym string) bool {
	_, ok := g.terminals[sym]
	return ok
}

// IsNonTerminal reports whether sym is a declared non-terminal.
func (g *Grammar) IsNonTerminal(sym string) bool {
	_, ok := g.nonTerminals[sym]
	return ok
}

// Productions returns every production in declaration order.
func (g *Grammar) Productions() []Production {
	out := make([]Production, len(g.productions))
	for i, p := range g.productions {
		out[i] = p.clone()
	}
	return out
}

// Alternatives returns the right-hand sides of the productions whose
// left-hand side is exactly the single symbol lhs, in declaration order.
func (g *Grammar) Alternatives(lhs string) [][]string {
	var out [][]string
	for _, p := range g.productions {
		if len(p.LHS) == 1 && p.LHS[0] == lhs {
			out = append(out, append([]string(nil), p.RHS...))
		}
	}
	return out
}

// LeftHandSides returns the distinct left-hand sides in order of first appearance.
func (g *Grammar) LeftHandSides() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range g.productions {
		h := p.Head()
		if !seen[h] {
			seen[h] = true
			out = append(out, h)
		}
	}
	return out
}

// Tokenize splits s into declared grammar symbols using longest match.
// Spaces that no symbol starts with separate symbols, so "q1 0" stays two
// symbols even when "q10" is declared. "ε" and the empty string yield an
// empty sentence.
func Tokenize(s string, symbols []string) ([]string, error) {
	if IsEmptyProduction(s) {
		return nil, nil
	}
	ordered := append([]string(nil), symbols...)
	sort.SliceStable(ordered, func(i, j int) bool { return len(ordered[i]) > len(ordered[j]) })

	var out []string
	for rest := s; rest != ""; {
		matched := ""
		for _, sym := range ordered {
			if sym != "" && strings.HasPrefix(rest, sym) {
				matched = sym
				break
			}
		}
		if matched == "" && strings.HasPrefix(rest, " ") {
			rest = strings.TrimLeft(rest, " ")
			continue
		}
		if matched == "" {
			return nil, fmt.Errorf("%w: no declared symbol matches %q in %q", ErrInvalidGrammar, rest, s)
		}
		out = append(out, matched)
		rest = rest[len(matched):]
	}
	return out, nil
}

func toSet(items []string) map[string]struct{} {
	s := make(map[string]struct{}, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

func sortedKeys(s map[string]struct{}) []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
