package cli

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/chomsky/pkg/adapters/file"
	"github.com/aretw0/chomsky/pkg/adapters/loam"
	"github.com/aretw0/chomsky/pkg/adapters/memory"
	"github.com/aretw0/chomsky/pkg/adapters/redis"
	"github.com/aretw0/chomsky/pkg/fixtures"
	"github.com/aretw0/chomsky/pkg/persistence/middleware"
	"github.com/aretw0/chomsky/pkg/schema"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStore(t *testing.T) {
	tests := []struct {
		ref     string
		kind    StoreKind
		target  string
		wantErr bool
	}{
		{ref: "", kind: StoreMemory},
		{ref: "memory", kind: StoreMemory},
		{ref: "file:./defs", kind: StoreFile, target: "./defs"},
		{ref: "loam:/tmp/x", kind: StoreLoam, target: "/tmp/x"},
		{ref: "redis://localhost:6379/2", kind: StoreRedis, target: "redis://localhost:6379/2"},
		{ref: "file:", wantErr: true},
		{ref: "postgres:db", wantErr: true},
		{ref: "nonsense", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			kind, target, err := ParseStore(tt.ref)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.target, target)
		})
	}
}

func TestRedisTarget(t *testing.T) {
	addr, password, db, err := redisTarget("redis://:secret@cache:6380/3")
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", addr)
	assert.Equal(t, "secret", password)
	assert.Equal(t, 3, db)

	addr, _, db, err = redisTarget("redis://cache")
	require.NoError(t, err)
	assert.Equal(t, "cache:6379", addr)
	assert.Equal(t, 0, db)

	_, _, _, err = redisTarget("http://cache:6379")
	assert.Error(t, err)

	_, _, _, err = redisTarget("redis://cache/zero")
	assert.Error(t, err)
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory", func(t *testing.T) {
		store, closeFn, err := OpenStore(ctx, "memory")
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &memory.Store{}, store)
	})

	t.Run("File", func(t *testing.T) {
		store, closeFn, err := OpenStore(ctx, "file:"+t.TempDir())
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &file.Store{}, store)
	})

	t.Run("Loam", func(t *testing.T) {
		store, closeFn, err := OpenStore(ctx, "loam:"+t.TempDir())
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &loam.Store{}, store)
	})

	t.Run("Redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		store, closeFn, err := OpenStore(ctx, "redis://"+mr.Addr())
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &redis.Store{}, store)

		require.NoError(t, store.Save(ctx, schema.FromAutomaton("lab", fixtures.LabNFA())))
		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"lab"}, names)
	})

	t.Run("Redis Unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		_, closeFn, err := OpenStore(ctx, "redis://"+addr)
		assert.Error(t, err)
		assert.NotNil(t, closeFn)
	})
}

func TestConfig_Logger(t *testing.T) {
	_, err := Config{LogLevel: "info", LogFormat: "json"}.Logger()
	assert.NoError(t, err)

	_, err = Config{LogLevel: "loud", LogFormat: "text"}.Logger()
	assert.Error(t, err)

	_, err = Config{LogLevel: "info", LogFormat: "xml"}.Logger()
	assert.Error(t, err)
}

func TestNewToolkit(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()

	tk, closeFn, err := NewToolkit(ctx, Config{LogLevel: "error", LogFormat: "text", StateLimit: 2}, reg)
	require.NoError(t, err)
	defer closeFn()

	// the lab DFA needs six states
	_, err = tk.Determinize(ctx, fixtures.LabNFA())
	assert.Error(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)

	err = tk.Store().Save(ctx, schema.FromAutomaton("lab", fixtures.LabNFA()))
	require.NoError(t, err)

	_, _, err = NewToolkit(ctx, Config{LogLevel: "info", LogFormat: "text", Store: "bogus:"}, nil)
	assert.Error(t, err)
}

func TestNewToolkit_ReadOnly(t *testing.T) {
	ctx := context.Background()
	tk, closeFn, err := NewToolkit(ctx, Config{LogLevel: "info", LogFormat: "text", ReadOnly: true}, nil)
	require.NoError(t, err)
	defer closeFn()

	err = tk.Store().Save(ctx, schema.FromAutomaton("lab", fixtures.LabNFA()))
	assert.ErrorIs(t, err, middleware.ErrReadOnly)
}
