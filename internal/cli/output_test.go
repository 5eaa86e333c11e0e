package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/chomsky/internal/presentation/tui"
	"github.com/aretw0/chomsky/pkg/fixtures"
	"github.com/aretw0/chomsky/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefinition(t *testing.T) {
	def := schema.FromAutomaton("lab", fixtures.LabNFA())

	t.Run("Stdout YAML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteDefinition(&buf, def, ""))
		assert.Contains(t, buf.String(), "kind: automaton")
	})

	t.Run("JSON file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lab.json")
		var buf bytes.Buffer
		require.NoError(t, WriteDefinition(&buf, def, path))
		assert.Empty(t, buf.String())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var raw map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))
		assert.Equal(t, "lab", raw["name"])
	})
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, tui.Plain, "# Title\n"))
	assert.Equal(t, "# Title\n", buf.String())
}
