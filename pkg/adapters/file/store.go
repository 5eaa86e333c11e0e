package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/chomsky/pkg/domain"
	"github.com/aretw0/chomsky/pkg/schema"
)

const ext = ".yaml"

// Store implements ports.DefinitionStore over a directory of YAML documents,
// one <name>.yaml file per definition.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".chomsky/definitions".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".chomsky", "definitions")
	}
	return &Store{BasePath: basePath}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.BasePath, name+ext)
}

// Save validates def and writes it atomically: the document goes to a temp
// file in the same directory, is synced, then renamed over the destination.
func (s *Store) Save(ctx context.Context, def *schema.Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}

	data, err := schema.Encode(def, schema.FormatYAML)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure definition directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-"+def.Name+"-*"+ext)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Windows cannot rename an open file.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	dest := s.path(def.Name)
	if _, err := os.Stat(dest); err == nil {
		if err := os.Remove(dest); err != nil {
			return fmt.Errorf("failed to replace definition %q: %w", def.Name, err)
		}
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("failed to move definition %q into place: %w", def.Name, err)
	}
	return nil
}

// Load reads and decodes <name>.yaml.
func (s *Store) Load(ctx context.Context, name string) (*schema.Definition, error) {
	if !schema.ValidName(name) {
		return nil, domain.ErrDefinitionNotFound
	}
	def, err := schema.LoadFile(s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrDefinitionNotFound
		}
		return nil, fmt.Errorf("failed to load definition %q: %w", name, err)
	}
	if def.Name != name {
		return nil, fmt.Errorf("definition file %s declares name %q", s.path(name), def.Name)
	}
	return def, nil
}

// Delete removes the definition file. Deleting a missing definition is not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	if !schema.ValidName(name) {
		return nil
	}
	if err := os.Remove(s.path(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete definition %q: %w", name, err)
	}
	return nil
}

// List returns the names of every *.yaml document, skipping in-flight temp files.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list definitions: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		fname := entry.Name()
		if entry.IsDir() || filepath.Ext(fname) != ext || strings.HasPrefix(fname, "tmp-") {
			continue
		}
		names = append(names, strings.TrimSuffix(fname, ext))
	}
	sort.Strings(names)
	return names, nil
}
