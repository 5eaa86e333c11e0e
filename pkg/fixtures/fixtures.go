// Package fixtures provides named, explicitly constructed automata and
// grammars used by the demo command and by tests.
package fixtures

import (
	"github.com/aretw0/chomsky/pkg/domain"
	"github.com/aretw0/chomsky/pkg/dsl"
)

// LabNFA returns the nondeterministic automaton of the lab variant:
//
//	δ(q0,a) = {q0,q1}, δ(q1,b) = q1, δ(q1,a) = q2, δ(q2,c) = q3, δ(q3,c) = q3
//
// with start q0 and accepting state q3.
func LabNFA() *domain.Automaton {
	b := dsl.NewAutomaton("a", "b", "c")

	b.State("q0").Start().On("a", "q0", "q1")
	b.State("q1").On("b", "q1").On("a", "q2")
	b.State("q2").On("c", "q3")
	b.State("q3").Final().On("c", "q3")

	return must(b.Build())
}

// LabGrammar returns the right-linear grammar of the first lab:
//
//	S -> aA
//	A -> bA | aB
//	B -> bB | aC | c
//	C -> cC | c
func LabGrammar() *domain.Grammar {
	g := dsl.NewGrammar("a", "b", "c").NonTerminals("S", "A", "B", "C")

	g.Rule("S").To("aA").Start()
	g.Rule("A").To("bA", "aB")
	g.Rule("B").To("bB", "aC", "c")
	g.Rule("C").To("cC", "c")

	return mustGrammar(g.Build())
}

// LabInputs are the strings the lab validates against both the NFA and its DFA.
var LabInputs = []string{"ac", "aac", "abac", "ababac", "abacc", "abc", "c", "aaac", "ababacc"}

func must(a *domain.Automaton, err error) *domain.Automaton {
	if err != nil {
		panic(err)
	}
	return a
}

func mustGrammar(g *domain.Grammar, err error) *domain.Grammar {
	if err != nil {
		panic(err)
	}
	return g
}
