package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/aretw0/chomsky/pkg/adapters/memory"
	"github.com/aretw0/chomsky/pkg/fixtures"
	"github.com/aretw0/chomsky/pkg/ports"
	"github.com/aretw0/chomsky/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunDefinitionStoreContract(t, store)
}

func TestMemoryStore_Isolation(t *testing.T) {
	ctx := context.Background()
	def := schema.FromAutomaton("lab", fixtures.LabNFA())
	store := memory.NewStore(def)

	def.Automaton.States[0] = "mutated"

	loaded, err := store.Load(ctx, "lab")
	require.NoError(t, err)
	assert.Equal(t, "q0", loaded.Automaton.States[0])

	loaded.Automaton.Transitions[0].To[0] = "mutated"
	again, err := store.Load(ctx, "lab")
	require.NoError(t, err)
	assert.Equal(t, "q0", again.Automaton.Transitions[0].To[0])
}

func TestMemoryStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("g-%02d", i)
			assert.NoError(t, store.Save(ctx, schema.FromGrammar(name, fixtures.LabGrammar())))
			_, err := store.Load(ctx, name)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, names, 20)
	assert.Equal(t, "g-00", names[0])
}
