/*
Package dsl provides a fluent Go DSL for constructing automata and grammars.

Construction is always explicit: every state, symbol and start element must be
declared, and Build reports any inconsistency through the domain errors instead
of filling in defaults.

Example usage:

	b := dsl.NewAutomaton("a", "b", "c")

	b.State("q0").Start().On("a", "q0", "q1")
	b.State("q1").On("b", "q1").On("a", "q2")
	b.State("q2").On("c", "q3")
	b.State("q3").Final().On("c", "q3")

	nfa, err := b.Build()

Grammars follow the same shape. Right-hand sides are written as strings and
split into declared symbols (longest match), so "aq0" reads as "a" then "q0":

	g := dsl.NewGrammar("a", "b").NonTerminals("S", "A")

	g.Rule("S").To("aA").Start()
	g.Rule("A").To("bA", "b")

	grammar, err := g.Build()
*/
package dsl
