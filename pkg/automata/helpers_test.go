package automata

import (
	"fmt"
	"math/rand"

	"github.com/aretw0/chomsky/pkg/domain"
)

// allStrings enumerates every string over alphabet up to maxLen symbols.
func allStrings(alphabet []domain.Symbol, maxLen int) []string {
	out := []string{""}
	frontier := []string{""}
	for n := 0; n < maxLen; n++ {
		var next []string
		for _, prefix := range frontier {
			for _, sym := range alphabet {
				next = append(next, prefix+string(sym))
			}
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}

// randomNFA builds a reproducible nondeterministic automaton.
func randomNFA(seed int64, numStates int, alphabet []domain.Symbol) *domain.Automaton {
	rng := rand.New(rand.NewSource(seed))

	states := make([]domain.State, numStates)
	for i := range states {
		states[i] = domain.State(fmt.Sprintf("s%d", i))
	}

	transitions := make(domain.Transitions)
	for _, from := range states {
		for _, sym := range alphabet {
			for _, to := range states {
				if rng.Intn(3) == 0 {
					transitions.Add(from, sym, to)
				}
			}
		}
	}

	var finals []domain.State
	for _, st := range states {
		if rng.Intn(3) == 0 {
			finals = append(finals, st)
		}
	}

	a, err := domain.NewAutomaton(states, alphabet, transitions, states[0], finals)
	if err != nil {
		panic(err)
	}
	return a
}
