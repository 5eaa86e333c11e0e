package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/chomsky/pkg/domain"
	"github.com/aretw0/chomsky/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunDefinitionStoreContract runs a suite of tests to verify that a DefinitionStore
// implementation adheres to the defined interface contract.
func RunDefinitionStoreContract(t *testing.T, store DefinitionStore) {
	ctx := context.Background()
	prefix := "contract-" + time.Now().Format("20060102150405")

	automaton := func(name string) *schema.Definition {
		return &schema.Definition{
			Kind:        schema.KindAutomaton,
			Name:        name,
			Description: "two states",
			Automaton: &schema.AutomatonSpec{
				States:   []string{"q0", "q1"},
				Alphabet: []string{"a"},
				Start:    "q0",
				Finals:   []string{"q1"},
				Transitions: []schema.TransitionSpec{
					{From: "q0", Symbol: "a", To: []string{"q0", "q1"}},
				},
			},
		}
	}
	grammar := func(name string) *schema.Definition {
		return &schema.Definition{
			Kind: schema.KindGrammar,
			Name: name,
			Grammar: &schema.GrammarSpec{
				NonTerminals: []string{"S"},
				Terminals:    []string{"a"},
				Start:        "S",
				Rules:        map[string][]string{"S": {"aS", "a"}},
			},
		}
	}

	t.Run("Save and Load Automaton", func(t *testing.T) {
		def := automaton(prefix + "-nfa")
		require.NoError(t, store.Save(ctx, def), "Save should not return error")
		defer func() { _ = store.Delete(ctx, def.Name) }()

		loaded, err := store.Load(ctx, def.Name)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, def.Kind, loaded.Kind)
		assert.Equal(t, def.Name, loaded.Name)
		assert.Equal(t, def.Description, loaded.Description)
		assert.Equal(t, def.Automaton, loaded.Automaton)
		assert.Nil(t, loaded.Grammar)
	})

	t.Run("Save and Load Grammar", func(t *testing.T) {
		def := grammar(prefix + "-grammar")
		require.NoError(t, store.Save(ctx, def))
		defer func() { _ = store.Delete(ctx, def.Name) }()

		loaded, err := store.Load(ctx, def.Name)
		require.NoError(t, err)
		assert.Equal(t, def.Grammar, loaded.Grammar)

		g, err := loaded.BuildGrammar()
		require.NoError(t, err)
		assert.Len(t, g.Productions(), 2)
	})

	t.Run("Save Replaces", func(t *testing.T) {
		name := prefix + "-replace"
		require.NoError(t, store.Save(ctx, automaton(name)))
		defer func() { _ = store.Delete(ctx, name) }()

		require.NoError(t, store.Save(ctx, grammar(name)))
		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, schema.KindGrammar, loaded.Kind)
		assert.Nil(t, loaded.Automaton)
	})

	t.Run("Save Invalid", func(t *testing.T) {
		def := automaton(prefix + "-invalid")
		def.Automaton = nil
		err := store.Save(ctx, def)
		require.Error(t, err)
		assert.NotEmpty(t, schema.ValidationErrors(err))

		_, err = store.Load(ctx, def.Name)
		assert.ErrorIs(t, err, domain.ErrDefinitionNotFound, "invalid definitions must not be stored")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, prefix+"-missing")
		assert.ErrorIs(t, err, domain.ErrDefinitionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		name := prefix + "-delete"
		require.NoError(t, store.Save(ctx, automaton(name)))

		require.NoError(t, store.Delete(ctx, name), "Delete should not return error")

		_, err := store.Load(ctx, name)
		assert.ErrorIs(t, err, domain.ErrDefinitionNotFound, "Load after Delete should return ErrDefinitionNotFound")

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.NotContains(t, names, name)

		assert.NoError(t, store.Delete(ctx, name), "Delete of a missing definition should be a no-op")
	})

	t.Run("List", func(t *testing.T) {
		id1 := prefix + "-list-b"
		id2 := prefix + "-list-a"
		require.NoError(t, store.Save(ctx, automaton(id1)))
		require.NoError(t, store.Save(ctx, grammar(id2)))
		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, id1)
		assert.Contains(t, names, id2)
		assert.IsNonDecreasing(t, names)
	})
}
