package schema

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/chomsky/pkg/automata"
	"github.com/aretw0/chomsky/pkg/domain"
	"github.com/aretw0/chomsky/pkg/fixtures"
	"github.com/aretw0/chomsky/pkg/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const labNFAYAML = `
kind: automaton
name: lab-nfa
description: Variant 1 from the lab
automaton:
  states: [q0, q1, q2, q3]
  alphabet: [a, b, c]
  start: q0
  finals: [q3]
  transitions:
    - {from: q0, symbol: a, to: [q0, q1]}
    - {from: q1, symbol: a, to: q2}
    - {from: q1, symbol: b, to: q1}
    - {from: q2, symbol: c, to: q3}
    - {from: q3, symbol: c, to: q3}
`

const labGrammarJSON = `{
  "kind": "grammar",
  "name": "lab-1",
  "grammar": {
    "non_terminals": ["S", "A", "B", "C"],
    "terminals": ["a", "b", "c"],
    "start": "S",
    "rules": {
      "S": ["aA"],
      "A": ["bA", "aB"],
      "B": ["bB", "aC", "c"],
      "C": ["cC", "c"]
    }
  }
}`

func TestDecode_AutomatonYAML(t *testing.T) {
	def, err := Decode([]byte(labNFAYAML), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, KindAutomaton, def.Kind)
	assert.Equal(t, "Variant 1 from the lab", def.Description)

	// scalar destinations are widened to lists
	require.Len(t, def.Automaton.Transitions, 5)
	assert.Equal(t, []string{"q2"}, def.Automaton.Transitions[1].To)

	a, err := def.BuildAutomaton()
	require.NoError(t, err)
	assert.Equal(t, fixtures.LabNFA().Triples(), a.Triples())
	assert.False(t, automata.IsDeterministic(a))
}

func TestDecode_GrammarJSON(t *testing.T) {
	def, err := Decode([]byte(labGrammarJSON), FormatJSON)
	require.NoError(t, err)

	g, err := def.BuildGrammar()
	require.NoError(t, err)
	assert.Equal(t, domain.Type3, grammar.Classify(g))
	assert.Len(t, g.Productions(), 8)
	assert.Equal(t, [][]string{{"b", "B"}, {"a", "C"}, {"c"}}, g.Alternatives("B"))
}

func TestDecode_NumericSymbolsAreStrings(t *testing.T) {
	doc := `
kind: automaton
name: binary
automaton:
  states: [even, odd]
  alphabet: [0, 1]
  start: even
  finals: [even]
  transitions:
    - {from: even, symbol: 1, to: odd}
    - {from: odd, symbol: 1, to: even}
    - {from: even, symbol: 0, to: even}
    - {from: odd, symbol: 0, to: odd}
`
	def, err := Decode([]byte(doc), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, def.Automaton.Alphabet)

	a, err := def.BuildAutomaton()
	require.NoError(t, err)
	assert.True(t, automata.Accepts(a, "1010"))
	assert.False(t, automata.Accepts(a, "100"))
}

func TestDecode_Errors(t *testing.T) {
	t.Run("Malformed YAML", func(t *testing.T) {
		_, err := Decode([]byte("kind: [unterminated"), FormatYAML)
		assert.ErrorIs(t, err, ErrMalformedDefinition)
		assert.ErrorContains(t, err, "failed to parse yaml")
	})

	t.Run("Unknown Key", func(t *testing.T) {
		_, err := Decode([]byte("kind: grammar\nname: g\nflavour: spicy\n"), FormatYAML)
		assert.ErrorIs(t, err, ErrMalformedDefinition)
		assert.ErrorContains(t, err, "flavour")
	})

	t.Run("Structural", func(t *testing.T) {
		_, err := Decode([]byte(`{"kind":"grammar","name":"g"}`), FormatJSON)
		var aggr *AggregateError
		assert.True(t, errors.As(err, &aggr))
	})

	t.Run("Model", func(t *testing.T) {
		doc := "kind: automaton\nname: a\nautomaton:\n  states: [q0]\n  start: q9\n"
		def, err := Decode([]byte(doc), FormatYAML)
		require.NoError(t, err)
		_, err = def.BuildAutomaton()
		assert.ErrorIs(t, err, domain.ErrInvalidAutomaton)
	})

	t.Run("Wrong Payload", func(t *testing.T) {
		def, err := Decode([]byte(labGrammarJSON), FormatJSON)
		require.NoError(t, err)
		_, err = def.BuildAutomaton()
		assert.ErrorContains(t, err, "not an automaton")
	})

	t.Run("Untokenizable Rule", func(t *testing.T) {
		spec := &GrammarSpec{
			NonTerminals: []string{"S"},
			Terminals:    []string{"a"},
			Start:        "S",
			Rules:        map[string][]string{"S": {"az"}},
		}
		_, err := spec.Build()
		assert.ErrorIs(t, err, domain.ErrInvalidGrammar)
	})
}

func TestRoundTrip_Automaton(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			nfa := fixtures.LabNFA()
			data, err := Encode(FromAutomaton("lab", nfa), format)
			require.NoError(t, err)

			def, err := Decode(data, format)
			require.NoError(t, err)
			a, err := def.BuildAutomaton()
			require.NoError(t, err)

			assert.Equal(t, nfa.States(), a.States())
			assert.Equal(t, nfa.Finals(), a.Finals())
			assert.Equal(t, nfa.Triples(), a.Triples())
		})
	}
}

func TestRoundTrip_Grammar(t *testing.T) {
	g := fixtures.LabGrammar()
	data, err := Encode(FromGrammar("lab", g), FormatYAML)
	require.NoError(t, err)

	def, err := Decode(data, FormatYAML)
	require.NoError(t, err)
	back, err := def.BuildGrammar()
	require.NoError(t, err)

	assert.Equal(t, g.NonTerminals(), back.NonTerminals())
	assert.Equal(t, g.Terminals(), back.Terminals())
	assert.ElementsMatch(t, g.Productions(), back.Productions())
}

func TestRoundTrip_PrefixNonTerminals(t *testing.T) {
	g, err := domain.NewGrammar([]string{"q1", "q10"}, []string{"0"}, []domain.Production{
		domain.NewProduction("q10", "q1", "0"),
		domain.NewProduction("q1", "0"),
	}, "q10")
	require.NoError(t, err)

	def := FromGrammar("left", g)
	assert.Equal(t, []string{"q1 0"}, def.Grammar.Rules["q10"])
	assert.Equal(t, []string{"0"}, def.Grammar.Rules["q1"])

	data, err := Encode(def, FormatYAML)
	require.NoError(t, err)
	decoded, err := Decode(data, FormatYAML)
	require.NoError(t, err)
	back, err := decoded.BuildGrammar()
	require.NoError(t, err)
	assert.ElementsMatch(t, g.Productions(), back.Productions())
}

func TestRoundTrip_CompositeStates(t *testing.T) {
	dfa, err := automata.Determinize(fixtures.LabNFA())
	require.NoError(t, err)

	data, err := Encode(FromAutomaton("lab-dfa", dfa), FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(data), "{q0,q1}")

	def, err := Decode(data, FormatYAML)
	require.NoError(t, err)
	back, err := def.BuildAutomaton()
	require.NoError(t, err)
	assert.Equal(t, dfa.Triples(), back.Triples())
}

func TestRoundTrip_EmptyProduction(t *testing.T) {
	g, err := domain.NewGrammar([]string{"S"}, []string{"a"}, []domain.Production{
		domain.NewProduction("S", "a", "S"),
		domain.NewProduction("S"),
	}, "S")
	require.NoError(t, err)

	def := FromGrammar("eps", g)
	assert.Equal(t, []string{"aS", domain.Epsilon}, def.Grammar.Rules["S"])

	back, err := def.BuildGrammar()
	require.NoError(t, err)
	assert.True(t, back.Productions()[1].IsEmpty())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "nfa.yaml")
	jsonPath := filepath.Join(dir, "grammar.JSON")
	require.NoError(t, os.WriteFile(yamlPath, []byte(labNFAYAML), 0o644))
	require.NoError(t, os.WriteFile(jsonPath, []byte(labGrammarJSON), 0o644))

	def, err := LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "lab-nfa", def.Name)

	def, err = LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, KindGrammar, def.Kind)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read definition")
}
