package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/chomsky/internal/presentation/graph"
	"github.com/aretw0/chomsky/pkg/automata"
	"github.com/aretw0/chomsky/pkg/dsl"
	"github.com/aretw0/chomsky/pkg/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMermaid(t *testing.T) {
	out := graph.Mermaid(fixtures.LabNFA(), nil)

	tests := []struct {
		name     string
		contains []string
	}{
		{
			name:     "Header",
			contains: []string{"stateDiagram-v2\n", "direction LR"},
		},
		{
			name: "State Labels",
			contains: []string{
				`state "q0" as s0`,
				`state "q3" as s3`,
			},
		},
		{
			name:     "Start and Final Markers",
			contains: []string{"[*] --> s0", "s3 --> [*]"},
		},
		{
			name: "Edges",
			contains: []string{
				"s0 --> s0: a",
				"s0 --> s1: a",
				"s1 --> s2: a",
				"s1 --> s1: b",
				"s3 --> s3: c",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}

	assert.NotContains(t, out, "classDef", "no overlay requested")
}

func TestMermaid_GroupsParallelEdges(t *testing.T) {
	b := dsl.NewAutomaton("a", "b")
	b.State("p").Start().On("a", "q").On("b", "q")
	b.State("q").Final()
	a, err := b.Build()
	require.NoError(t, err)

	out := graph.Mermaid(a, nil)
	assert.Contains(t, out, "s0 --> s1: a,b")
	assert.Equal(t, 1, strings.Count(out, "s0 --> s1"))
}

func TestMermaid_CompositeLabels(t *testing.T) {
	dfa, err := automata.Determinize(fixtures.LabNFA())
	require.NoError(t, err)

	out := graph.Mermaid(dfa, nil)
	assert.Contains(t, out, `state "{q0,q1,q2}" as`)
	assert.NotContains(t, out, "--> {", "composite names never appear as ids")
}

func TestMermaid_Overlay(t *testing.T) {
	nfa := fixtures.LabNFA()
	overlay := graph.OverlayFromTrace(automata.Trace(nfa, "aac"))

	assert.Equal(t, "q3", string(overlay.Current[0]))
	assert.Len(t, overlay.Visited, 4)

	out := graph.Mermaid(nfa, overlay)
	assert.Contains(t, out, "classDef visited")
	assert.Contains(t, out, "class s0 visited")
	assert.Contains(t, out, "class s2 visited")
	assert.Contains(t, out, "class s3 current")
	assert.NotContains(t, out, "class s3 visited")
}
