package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/chomsky/pkg/domain"
	"github.com/aretw0/chomsky/pkg/schema"
	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"
)

// Store adapts a Loam vault to ports.DefinitionStore.
//
// Each definition is a Markdown document: the model lives in the
// frontmatter and the description is the body, so a vault can be edited by
// hand and versioned alongside the code that uses it.
type Store struct {
	repo  core.Repository
	typed *loam.TypedRepository[DefinitionMetadata]
}

// New wraps an initialized Loam repository.
func New(repo core.Repository) *Store {
	return &Store{
		repo:  repo,
		typed: loam.NewTypedRepository[DefinitionMetadata](repo),
	}
}

// Open initializes (or reopens) a vault at path without versioning.
func Open(path string) (*Store, error) {
	repo, err := loam.Init(path, loam.WithVersioning(false))
	if err != nil {
		return nil, fmt.Errorf("failed to open loam vault %s: %w", path, err)
	}
	return New(repo), nil
}

// Save writes def as a document named after it.
func (s *Store) Save(ctx context.Context, def *schema.Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	raw, err := def.ToMap()
	if err != nil {
		return err
	}

	meta := DefinitionMetadata{Kind: string(def.Kind), Name: def.Name}
	if m, ok := raw["automaton"].(map[string]any); ok {
		meta.Automaton = m
	}
	if m, ok := raw["grammar"].(map[string]any); ok {
		meta.Grammar = m
	}

	err = s.typed.Save(ctx, &loam.DocumentModel[DefinitionMetadata]{
		ID:      def.Name,
		Content: def.Description,
		Data:    meta,
	})
	if err != nil {
		return fmt.Errorf("loam save failed for %s: %w", def.Name, err)
	}
	return nil
}

// Load reads a definition by name.
func (s *Store) Load(ctx context.Context, name string) (*schema.Definition, error) {
	doc, err := s.typed.Get(ctx, name)
	if err != nil {
		if !s.exists(ctx, name) {
			return nil, domain.ErrDefinitionNotFound
		}
		return nil, fmt.Errorf("loam get failed for %s: %w", name, err)
	}

	raw := map[string]any{
		"kind": doc.Data.Kind,
		"name": documentName(doc.ID, doc.Data),
	}
	if desc := strings.TrimSpace(doc.Content); desc != "" {
		raw["description"] = desc
	}
	if doc.Data.Automaton != nil {
		raw["automaton"] = doc.Data.Automaton
	}
	if doc.Data.Grammar != nil {
		raw["grammar"] = doc.Data.Grammar
	}

	def, err := schema.FromMap(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", doc.ID, err)
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", doc.ID, err)
	}
	return def, nil
}

// Delete removes the document. Missing documents are ignored.
func (s *Store) Delete(ctx context.Context, name string) error {
	if !s.exists(ctx, name) {
		return nil
	}
	if err := s.repo.Delete(ctx, name); err != nil {
		return fmt.Errorf("loam delete failed for %s: %w", name, err)
	}
	return nil
}

// List returns the names of every document in the vault.
// Two files resolving to the same name are reported as an error.
func (s *Store) List(ctx context.Context) ([]string, error) {
	docs, err := s.typed.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string)
	names := make([]string, 0, len(docs))
	for _, doc := range docs {
		name := documentName(doc.ID, doc.Data)
		if existing, ok := seen[name]; ok {
			return nil, fmt.Errorf("collision detected: definition '%s' is defined in both '%s' and '%s'", name, existing, doc.ID)
		}
		seen[name] = doc.ID
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) exists(ctx context.Context, name string) bool {
	names, err := s.List(ctx)
	if err != nil {
		return false
	}
	i := sort.SearchStrings(names, name)
	return i < len(names) && names[i] == name
}

// documentName prefers the name recorded in the frontmatter and falls back
// to the file name without its extension.
func documentName(id string, meta DefinitionMetadata) string {
	if meta.Name != "" {
		return meta.Name
	}
	return trimExtension(id)
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
