package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/chomsky/pkg/domain"
	"github.com/aretw0/chomsky/pkg/observability"
	"github.com/aretw0/chomsky/pkg/ports"
	"github.com/aretw0/chomsky/pkg/schema"
)

type instrumentMiddleware struct {
	next    ports.DefinitionStore
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewInstrumentMiddleware logs and measures every store call as the
// operations store.save, store.load, store.delete and store.list.
// A missing definition is a normal outcome, not a failure.
// Either argument may be nil.
func NewInstrumentMiddleware(logger *slog.Logger, metrics *observability.Metrics) Middleware {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return func(next ports.DefinitionStore) ports.DefinitionStore {
		return &instrumentMiddleware{next: next, logger: logger, metrics: metrics}
	}
}

func (m *instrumentMiddleware) record(ctx context.Context, op, name string, start time.Time, err error) {
	elapsed := time.Since(start)
	if errors.Is(err, domain.ErrDefinitionNotFound) {
		err = nil
	}
	m.metrics.Observe(op, elapsed.Seconds(), err)

	attrs := []any{"operation", op, "duration", elapsed}
	if name != "" {
		attrs = append(attrs, "name", name)
	}
	if err != nil {
		m.logger.WarnContext(ctx, "store call failed", append(attrs, "error", err)...)
		return
	}
	m.logger.DebugContext(ctx, "store call", attrs...)
}

func (m *instrumentMiddleware) Save(ctx context.Context, def *schema.Definition) (err error) {
	defer func(start time.Time) { m.record(ctx, "store.save", def.Name, start, err) }(time.Now())
	return m.next.Save(ctx, def)
}

func (m *instrumentMiddleware) Load(ctx context.Context, name string) (def *schema.Definition, err error) {
	defer func(start time.Time) { m.record(ctx, "store.load", name, start, err) }(time.Now())
	return m.next.Load(ctx, name)
}

func (m *instrumentMiddleware) Delete(ctx context.Context, name string) (err error) {
	defer func(start time.Time) { m.record(ctx, "store.delete", name, start, err) }(time.Now())
	return m.next.Delete(ctx, name)
}

func (m *instrumentMiddleware) List(ctx context.Context) (names []string, err error) {
	defer func(start time.Time) { m.record(ctx, "store.list", "", start, err) }(time.Now())
	return m.next.List(ctx)
}
