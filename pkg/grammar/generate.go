package grammar

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/aretw0/chomsky/pkg/domain"
)

// DefaultMaxSteps bounds the number of rewriting steps of a single Generate call.
const DefaultMaxSteps = 1000

// Generator derives random strings from a right-linear grammar.
// A Generator is not safe for concurrent use; it owns its random source.
type Generator struct {
	grammar  *domain.Grammar
	rng      *rand.Rand
	MaxSteps int
}

// NewGenerator creates a generator. The same source seed always yields the
// same sequence of strings because alternatives are kept in declaration order.
func NewGenerator(g *domain.Grammar, src rand.Source) *Generator {
	return &Generator{
		grammar:  g,
		rng:      rand.New(src),
		MaxSteps: DefaultMaxSteps,
	}
}

// Generate derives one string. Starting at the start symbol it picks a random
// alternative of the current non-terminal, emits its terminals up to the first
// non-terminal and continues from there. Derivation ends when an alternative
// contains no non-terminal or the current symbol has no productions.
func (gen *Generator) Generate() (string, error) {
	var sb strings.Builder
	current := gen.grammar.Start()

	for step := 0; ; step++ {
		if gen.MaxSteps > 0 && step >= gen.MaxSteps {
			return "", fmt.Errorf("%w: %d steps (partial %q)", domain.ErrGenerationLimit, gen.MaxSteps, sb.String())
		}

		alternatives := gen.grammar.Alternatives(current)
		if len(alternatives) == 0 {
			return sb.String(), nil
		}

		next := ""
		for _, sym := range alternatives[gen.rng.Intn(len(alternatives))] {
			if gen.grammar.IsTerminal(sym) {
				sb.WriteString(sym)
				continue
			}
			if gen.grammar.IsNonTerminal(sym) {
				next = sym
				break
			}
		}
		if next == "" {
			return sb.String(), nil
		}
		current = next
	}
}

// GenerateN derives n strings.
func (gen *Generator) GenerateN(n int) ([]string, error) {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		s, err := gen.Generate()
		if err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, nil
}
