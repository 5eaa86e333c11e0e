package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrammar(t *testing.T) {
	g, err := NewGrammar(
		[]string{"S", "A"},
		[]string{"a", "b"},
		[]Production{
			NewProduction("S", "a", "A"),
			NewProduction("A", "b", "A"),
			NewProduction("A", "b"),
		},
		"S",
	)
	require.NoError(t, err)

	assert.Equal(t, "S", g.Start())
	assert.Equal(t, []string{"A", "S"}, g.NonTerminals())
	assert.Equal(t, []string{"a", "b"}, g.Terminals())
	assert.Equal(t, []string{"S", "A"}, g.LeftHandSides())
	assert.Equal(t, [][]string{{"b", "A"}, {"b"}}, g.Alternatives("A"))
	assert.Equal(t, "A -> bA", g.Productions()[1].String())
}

func TestNewGrammar_Invalid(t *testing.T) {
	_, err := NewGrammar(
		[]string{"S", "a"},
		[]string{"a"},
		[]Production{NewProduction("S", "z")},
		"T",
	)
	require.Error(t, err)

	var invalid *InvalidGrammarError
	require.ErrorAs(t, err, &invalid)
	assert.ErrorIs(t, err, ErrInvalidGrammar)
	assert.Len(t, invalid.Issues, 3) // start, overlap, undeclared z
}

func TestProduction_Empty(t *testing.T) {
	p := NewProduction("S")
	assert.True(t, p.IsEmpty())
	assert.Equal(t, "S -> ε", p.String())
}

func TestTokenize(t *testing.T) {
	symbols := []string{"a", "b", "q0", "q1", "q", "0"}

	tests := []struct {
		in      string
		want    []string
		wantErr bool
	}{
		{in: "aq0", want: []string{"a", "q0"}},
		{in: "bq1a", want: []string{"b", "q1", "a"}},
		{in: "qa", want: []string{"q", "a"}},
		{in: "q 0", want: []string{"q", "0"}},
		{in: "q0  a", want: []string{"q0", "a"}},
		{in: "ε", want: nil},
		{in: "", want: nil},
		{in: "az", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Tokenize(tt.in, symbols)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidGrammar)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnsupportedProductionShapeError(t *testing.T) {
	err := &UnsupportedProductionShapeError{LHS: "S", RHS: "Aa"}
	assert.ErrorIs(t, err, ErrUnsupportedProductionShape)
	assert.Equal(t, "unsupported production shape: S -> Aa", err.Error())
}

func TestChomskyType_String(t *testing.T) {
	assert.Equal(t, "Type 3 (Regular Grammar)", Type3.String())
	assert.Equal(t, "Type 0 (Unrestricted Grammar)", Type0.String())
	text, err := Type2.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "type2", string(text))
}
