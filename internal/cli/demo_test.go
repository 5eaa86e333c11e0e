package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/chomsky"
	"github.com/aretw0/chomsky/internal/presentation/graph"
	"github.com/aretw0/chomsky/pkg/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDemo(t *testing.T) {
	orig := graph.DotBinary
	graph.DotBinary = "chomsky-missing-dot"
	defer func() { graph.DotBinary = orig }()

	dir := t.TempDir()
	var buf bytes.Buffer
	err := RunDemo(context.Background(), chomsky.New(), DemoOptions{Out: &buf, GraphDir: dir, Seed: 1})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "## Lab NFA")
	assert.Contains(t, out, "- **Deterministic**: no")
	assert.Contains(t, out, "- **Deterministic**: yes")
	assert.Contains(t, out, "Type 3 (Regular Grammar)")
	for _, in := range fixtures.LabInputs {
		assert.Contains(t, out, "| `"+in+"` |")
	}
	assert.Contains(t, out, "Graphviz not installed")

	for _, name := range []string{"ndfa_graph.mmd", "dfa_graph.mmd"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Contains(t, string(data), "stateDiagram-v2")
	}
}

func TestRunDemo_NoGraphs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunDemo(context.Background(), chomsky.New(), DemoOptions{Out: &buf}))
	assert.NotContains(t, buf.String(), ">>>")
}
