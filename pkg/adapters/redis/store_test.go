package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/chomsky/pkg/adapters/redis"
	"github.com/aretw0/chomsky/pkg/domain"
	"github.com/aretw0/chomsky/pkg/fixtures"
	"github.com/aretw0/chomsky/pkg/ports"
	"github.com/aretw0/chomsky/pkg/schema"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "Failed to start miniredis")
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	store := redis.NewFromClient(client, opts...)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestRedisStore_Contract(t *testing.T) {
	store, _ := newStore(t)
	ports.RunDefinitionStoreContract(t, store)
}

func TestRedisStore_Ping(t *testing.T) {
	store, mr := newStore(t)
	assert.NoError(t, store.Ping(context.Background()))

	mr.Close()
	assert.Error(t, store.Ping(context.Background()))
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	store, mr := newStore(t, redis.WithTTL(1*time.Second))
	ctx := context.Background()
	def := schema.FromAutomaton("short-lived", fixtures.LabNFA())

	// 1. Save
	require.NoError(t, store.Save(ctx, def))

	// 2. Listed immediately
	names, err := store.List(ctx)
	assert.NoError(t, err)
	assert.Contains(t, names, def.Name)

	// 3. Fast forward miniredis for key expiration
	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, def.Name)
	assert.ErrorIs(t, err, domain.ErrDefinitionNotFound)

	// 4. The index is pruned against the wall clock, so wait past the TTL.
	time.Sleep(1200 * time.Millisecond)

	names, err = store.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, names)
}

func TestRedisStore_Prefix(t *testing.T) {
	store, mr := newStore(t, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, schema.FromGrammar("index", fixtures.LabGrammar())))

	assert.True(t, mr.Exists("custom:app:doc:index"), "Expected document key with custom prefix to exist")
	assert.True(t, mr.Exists("custom:app:index"), "Expected index with custom prefix to exist")

	// A definition named like the index key must not clobber it.
	names, err := store.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"index"}, names)

	loaded, err := store.Load(ctx, "index")
	require.NoError(t, err)
	assert.Equal(t, schema.KindGrammar, loaded.Kind)
}

func TestRedisStore_CorruptDocument(t *testing.T) {
	store, mr := newStore(t)
	require.NoError(t, mr.Set(redis.DefaultPrefix+"doc:broken", "{not json"))

	_, err := store.Load(context.Background(), "broken")
	assert.ErrorContains(t, err, "corrupt definition")
}
