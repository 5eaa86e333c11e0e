package grammar

import (
	"math/rand"
	"testing"

	"github.com/aretw0/chomsky/pkg/automata"
	"github.com/aretw0/chomsky/pkg/domain"
	"github.com/aretw0/chomsky/pkg/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_ProducesWordsOfTheLanguage(t *testing.T) {
	g := fixtures.LabGrammar()
	fa, err := ToAutomaton(g)
	require.NoError(t, err)

	gen := NewGenerator(g, rand.NewSource(42))
	words, err := gen.GenerateN(25)
	require.NoError(t, err)
	require.Len(t, words, 25)

	for _, w := range words {
		assert.True(t, automata.Accepts(fa, w), "generated %q is not accepted", w)
	}
}

func TestGenerator_SeedIsReproducible(t *testing.T) {
	g := fixtures.LabGrammar()

	first, err := NewGenerator(g, rand.NewSource(7)).GenerateN(10)
	require.NoError(t, err)
	second, err := NewGenerator(g, rand.NewSource(7)).GenerateN(10)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerator_StepLimit(t *testing.T) {
	// S -> aS never terminates.
	g := build(t, []string{"a"}, []string{"S"}, "S", rule{"S", []string{"aS"}})

	gen := NewGenerator(g, rand.NewSource(1))
	gen.MaxSteps = 10
	_, err := gen.Generate()
	assert.ErrorIs(t, err, domain.ErrGenerationLimit)
}

func TestGenerator_NoProductions(t *testing.T) {
	g := build(t, []string{"a"}, []string{"S"}, "S")
	s, err := NewGenerator(g, rand.NewSource(1)).Generate()
	require.NoError(t, err)
	assert.Equal(t, "", s)
}
