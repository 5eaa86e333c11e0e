package middleware_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/aretw0/chomsky/pkg/adapters/memory"
	"github.com/aretw0/chomsky/pkg/domain"
	"github.com/aretw0/chomsky/pkg/fixtures"
	"github.com/aretw0/chomsky/pkg/observability"
	"github.com/aretw0/chomsky/pkg/persistence/middleware"
	"github.com/aretw0/chomsky/pkg/ports"
	"github.com/aretw0/chomsky/pkg/schema"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestInstrumentMiddleware_Contract(t *testing.T) {
	store := middleware.Chain(memory.NewStore(), middleware.NewInstrumentMiddleware(nil, nil))
	ports.RunDefinitionStoreContract(t, store)
}

func TestInstrumentMiddleware_Records(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	metrics := observability.NewMetrics(prometheus.NewRegistry())

	store := middleware.Chain(memory.NewStore(), middleware.NewInstrumentMiddleware(logger, metrics))
	ctx := context.Background()

	if err := store.Save(ctx, schema.FromAutomaton("lab", fixtures.LabNFA())); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := store.Load(ctx, "lab"); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := store.Load(ctx, "ghost"); !errors.Is(err, domain.ErrDefinitionNotFound) {
		t.Fatalf("expected ErrDefinitionNotFound, got %v", err)
	}
	if err := store.Save(ctx, &schema.Definition{Name: "bad"}); err == nil {
		t.Fatal("expected validation error")
	}

	if got := testutil.ToFloat64(metrics.Operations.WithLabelValues("store.load", observability.OutcomeOK)); got != 2 {
		t.Errorf("store.load ok = %v, want 2", got)
	}
	if got := testutil.ToFloat64(metrics.Operations.WithLabelValues("store.save", observability.OutcomeError)); got != 1 {
		t.Errorf("store.save error = %v, want 1", got)
	}
	if !strings.Contains(logs.String(), "store call failed") || !strings.Contains(logs.String(), "name=bad") {
		t.Errorf("missing failure log in:\n%s", logs.String())
	}
}

func TestReadOnlyMiddleware(t *testing.T) {
	ctx := context.Background()
	base := memory.NewStore(schema.FromGrammar("lab", fixtures.LabGrammar()))
	store := middleware.Chain(base, middleware.NewReadOnlyMiddleware())

	if err := store.Save(ctx, schema.FromGrammar("other", fixtures.LabGrammar())); !errors.Is(err, middleware.ErrReadOnly) {
		t.Errorf("Save: expected ErrReadOnly, got %v", err)
	}
	if err := store.Delete(ctx, "lab"); !errors.Is(err, middleware.ErrReadOnly) {
		t.Errorf("Delete: expected ErrReadOnly, got %v", err)
	}
	if _, err := store.Load(ctx, "lab"); err != nil {
		t.Errorf("Load failed: %v", err)
	}
	names, err := store.List(ctx)
	if err != nil || len(names) != 1 || names[0] != "lab" {
		t.Errorf("List = %v, %v", names, err)
	}
}

func TestChain_Order(t *testing.T) {
	var calls []string
	tag := func(name string) middleware.Middleware {
		return func(next ports.DefinitionStore) ports.DefinitionStore {
			return &tracingStore{DefinitionStore: next, name: name, calls: &calls}
		}
	}

	store := middleware.Chain(memory.NewStore(), tag("outer"), tag("inner"))
	_, _ = store.List(context.Background())

	if strings.Join(calls, ",") != "outer,inner" {
		t.Errorf("calls = %v, want [outer inner]", calls)
	}
}

type tracingStore struct {
	ports.DefinitionStore
	name  string
	calls *[]string
}

func (s *tracingStore) List(ctx context.Context) ([]string, error) {
	*s.calls = append(*s.calls, s.name)
	return s.DefinitionStore.List(ctx)
}
