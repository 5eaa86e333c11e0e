package automata

import (
	"testing"

	"github.com/aretw0/chomsky/pkg/dsl"
	"github.com/aretw0/chomsky/pkg/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccepts_Lab(t *testing.T) {
	nfa := fixtures.LabNFA()

	tests := []struct {
		input string
		want  bool
	}{
		{input: "aac", want: true},
		{input: "ab", want: false},
		{input: "c", want: false},
		{input: "ac", want: false},
		{input: "abac", want: true},
		{input: "ababac", want: false},
		{input: "abacc", want: true},
		{input: "abc", want: false},
		{input: "aaac", want: true},
		{input: "ababacc", want: false},
		{input: "", want: false},
		{input: "aaz", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Accepts(nfa, tt.input))
		})
	}
}

func TestAccepts_EmptyInputOnFinalStart(t *testing.T) {
	b := dsl.NewAutomaton("a")
	b.State("s").Start().Final()
	a, err := b.Build()
	require.NoError(t, err)

	assert.True(t, Accepts(a, ""))
	assert.False(t, Accepts(a, "a"))
}

func TestTrace(t *testing.T) {
	nfa := fixtures.LabNFA()

	steps := Trace(nfa, "aac")
	require.Len(t, steps, 4)
	assert.Equal(t, "{q0}", string(steps[0].Label()))
	assert.Equal(t, "{q0,q1}", string(steps[1].Label()))
	assert.Equal(t, "{q0,q1,q2}", string(steps[2].Label()))
	assert.Equal(t, "{q3}", string(steps[3].Label()))

	dead := Trace(nfa, "cab")
	require.Len(t, dead, 2, "trace stops at the first symbol without a move")
	assert.Equal(t, 0, dead[1].Len())
}
