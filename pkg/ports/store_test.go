package ports_test

import (
	"context"
	"sort"
	"testing"

	"github.com/aretw0/chomsky/pkg/domain"
	"github.com/aretw0/chomsky/pkg/ports"
	"github.com/aretw0/chomsky/pkg/schema"
)

// MockStore is a minimal map-backed DefinitionStore that round-trips
// definitions through their YAML encoding to simulate serialization.
type MockStore struct {
	data map[string][]byte
}

func NewMockStore() *MockStore {
	return &MockStore{data: make(map[string][]byte)}
}

func (m *MockStore) Save(ctx context.Context, def *schema.Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	raw, err := schema.Encode(def, schema.FormatYAML)
	if err != nil {
		return err
	}
	m.data[def.Name] = raw
	return nil
}

func (m *MockStore) Load(ctx context.Context, name string) (*schema.Definition, error) {
	raw, ok := m.data[name]
	if !ok {
		return nil, domain.ErrDefinitionNotFound
	}
	return schema.Decode(raw, schema.FormatYAML)
}

func (m *MockStore) Delete(ctx context.Context, name string) error {
	delete(m.data, name)
	return nil
}

func (m *MockStore) List(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(m.data))
	for name := range m.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func TestDefinitionStore_Contract(t *testing.T) {
	ports.RunDefinitionStoreContract(t, NewMockStore())
}
