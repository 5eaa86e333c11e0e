package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/chomsky/pkg/adapters/file"
	"github.com/aretw0/chomsky/pkg/domain"
	"github.com/aretw0/chomsky/pkg/fixtures"
	"github.com/aretw0/chomsky/pkg/ports"
	"github.com/aretw0/chomsky/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	ports.RunDefinitionStoreContract(t, file.New(t.TempDir()))
}

func TestFileStore_WritesReadableYAML(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, schema.FromGrammar("lab", fixtures.LabGrammar())))

	data, err := os.ReadFile(filepath.Join(dir, "lab.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "kind: grammar")

	// the same file is a valid standalone document
	def, err := schema.LoadFile(filepath.Join(dir, "lab.yaml"))
	require.NoError(t, err)
	g, err := def.BuildGrammar()
	require.NoError(t, err)
	assert.Equal(t, fixtures.LabGrammar().Productions(), g.Productions())
}

func TestFileStore_ListSkipsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, schema.FromAutomaton("lab", fixtures.LabNFA())))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tmp-lab-123.yaml"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0755))

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"lab"}, names)
}

func TestFileStore_MissingDirectory(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "absent"))

	names, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = store.Load(context.Background(), "lab")
	assert.ErrorIs(t, err, domain.ErrDefinitionNotFound)
}

func TestFileStore_NameMismatch(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)

	data, err := schema.Encode(schema.FromAutomaton("other", fixtures.LabNFA()), schema.FormatYAML)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lab.yaml"), data, 0644))

	_, err = store.Load(context.Background(), "lab")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrDefinitionNotFound)
}

func TestFileStore_DefaultPath(t *testing.T) {
	assert.Equal(t, filepath.Join(".chomsky", "definitions"), file.New("").BasePath)
}
