package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/chomsky/pkg/domain"
	"github.com/aretw0/chomsky/pkg/schema"
)

// Store implements ports.DefinitionStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*schema.Definition
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store, optionally seeded with definitions.
func NewStore(seed ...*schema.Definition) *Store {
	s := &Store{
		data: make(map[string]*schema.Definition),
	}
	for _, def := range seed {
		s.data[def.Name] = def.Clone()
	}
	return s
}

// Save validates and stores a copy of def.
func (s *Store) Save(ctx context.Context, def *schema.Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[def.Name] = def.Clone()
	return nil
}

// Load returns a copy so callers cannot mutate stored definitions.
func (s *Store) Load(ctx context.Context, name string) (*schema.Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	def, ok := s.data[name]
	if !ok {
		return nil, domain.ErrDefinitionNotFound
	}
	return def.Clone(), nil
}

// Delete removes the definition.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

// List returns the stored names.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
