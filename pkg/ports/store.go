package ports

import (
	"context"

	"github.com/aretw0/chomsky/pkg/schema"
)

// DefinitionStore persists named definitions.
type DefinitionStore interface {
	// Save validates and stores def under def.Name, replacing any previous version.
	Save(ctx context.Context, def *schema.Definition) error

	// Load retrieves a definition by name.
	// Returns domain.ErrDefinitionNotFound if it does not exist.
	Load(ctx context.Context, name string) (*schema.Definition, error)

	// Delete removes a definition. Deleting a missing name is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the stored names in lexical order.
	List(ctx context.Context) ([]string, error)
}
