package middleware

import (
	"context"
	"errors"

	"github.com/aretw0/chomsky/pkg/ports"
	"github.com/aretw0/chomsky/pkg/schema"
)

// ErrReadOnly is returned by Save and Delete on a read-only store.
var ErrReadOnly = errors.New("definition store is read-only")

type readOnlyMiddleware struct {
	next ports.DefinitionStore
}

// NewReadOnlyMiddleware rejects every write. Reads pass through.
func NewReadOnlyMiddleware() Middleware {
	return func(next ports.DefinitionStore) ports.DefinitionStore {
		return &readOnlyMiddleware{next: next}
	}
}

func (m *readOnlyMiddleware) Save(ctx context.Context, def *schema.Definition) error {
	return ErrReadOnly
}

func (m *readOnlyMiddleware) Load(ctx context.Context, name string) (*schema.Definition, error) {
	return m.next.Load(ctx, name)
}

func (m *readOnlyMiddleware) Delete(ctx context.Context, name string) error {
	return ErrReadOnly
}

func (m *readOnlyMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}
