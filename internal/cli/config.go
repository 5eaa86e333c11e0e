package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/chomsky"
	"github.com/aretw0/chomsky/internal/logging"
	"github.com/aretw0/chomsky/pkg/adapters/file"
	"github.com/aretw0/chomsky/pkg/adapters/loam"
	"github.com/aretw0/chomsky/pkg/adapters/memory"
	"github.com/aretw0/chomsky/pkg/adapters/redis"
	"github.com/aretw0/chomsky/pkg/observability"
	"github.com/aretw0/chomsky/pkg/persistence/middleware"
	"github.com/aretw0/chomsky/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
)

// Config gathers the flags shared by every command.
type Config struct {
	LogLevel   string
	LogFormat  string
	Store      string
	StateLimit int
	ReadOnly   bool
}

// Logger builds the application logger. It writes to stderr so that
// command output on stdout stays machine readable.
func (c Config) Logger() (*slog.Logger, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(c.LogFormat)
	if err != nil {
		return nil, err
	}
	return logging.New(level, format), nil
}

// StoreKind identifies a DefinitionStore backend.
type StoreKind string

const (
	StoreMemory StoreKind = "memory"
	StoreFile   StoreKind = "file"
	StoreLoam   StoreKind = "loam"
	StoreRedis  StoreKind = "redis"
)

// ParseStore splits a store reference into backend and target:
//
//	memory
//	file:./definitions
//	loam:./definitions
//	redis://:password@localhost:6379/0
func ParseStore(ref string) (StoreKind, string, error) {
	if ref == "" || ref == string(StoreMemory) {
		return StoreMemory, "", nil
	}
	if strings.HasPrefix(ref, "redis://") {
		return StoreRedis, ref, nil
	}
	kind, target, ok := strings.Cut(ref, ":")
	if !ok || target == "" {
		return "", "", fmt.Errorf("invalid store %q: expected memory, file:DIR, loam:DIR or redis://ADDR", ref)
	}
	switch StoreKind(kind) {
	case StoreFile, StoreLoam:
		return StoreKind(kind), target, nil
	default:
		return "", "", fmt.Errorf("unknown store backend %q", kind)
	}
}

// OpenStore opens the store named by ref. The returned close function is never nil.
func OpenStore(ctx context.Context, ref string) (ports.DefinitionStore, func() error, error) {
	noop := func() error { return nil }

	kind, target, err := ParseStore(ref)
	if err != nil {
		return nil, noop, err
	}

	switch kind {
	case StoreFile:
		return file.New(target), noop, nil
	case StoreLoam:
		store, err := loam.Open(target)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to open loam store: %w", err)
		}
		return store, noop, nil
	case StoreRedis:
		addr, password, db, err := redisTarget(target)
		if err != nil {
			return nil, noop, err
		}
		store := redis.New(addr, password, db)
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, noop, fmt.Errorf("failed to reach redis at %s: %w", addr, err)
		}
		return store, store.Close, nil
	default:
		return memory.NewStore(), noop, nil
	}
}

func redisTarget(ref string) (addr, password string, db int, err error) {
	opts, err := goredis.ParseURL(ref)
	if err != nil {
		return "", "", 0, fmt.Errorf("invalid redis url %q: %w", ref, err)
	}
	return opts.Addr, opts.Password, opts.DB, nil
}

// NewToolkit wires logger, store and metrics into a Toolkit.
// A nil registerer disables metric registration.
func NewToolkit(ctx context.Context, cfg Config, reg prometheus.Registerer) (*chomsky.Toolkit, func() error, error) {
	logger, err := cfg.Logger()
	if err != nil {
		return nil, nil, err
	}
	store, closeStore, err := OpenStore(ctx, cfg.Store)
	if err != nil {
		return nil, nil, err
	}

	metrics := observability.NewMetrics(reg)
	mws := []middleware.Middleware{middleware.NewInstrumentMiddleware(logger, metrics)}
	if cfg.ReadOnly {
		mws = append(mws, middleware.NewReadOnlyMiddleware())
	}

	opts := []chomsky.Option{
		chomsky.WithLogger(logger),
		chomsky.WithStore(middleware.Chain(store, mws...)),
		chomsky.WithMetrics(metrics),
	}
	if cfg.StateLimit > 0 {
		opts = append(opts, chomsky.WithStateLimit(cfg.StateLimit))
	}
	return chomsky.New(opts...), closeStore, nil
}
