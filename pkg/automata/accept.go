package automata

import "github.com/aretw0/chomsky/pkg/domain"

// Accepts runs the automaton over input and reports whether it ends in an
// accepting state. Nondeterminism is handled by tracking the set of every
// reachable state. A symbol without a move rejects the input; that is a
// normal result, not an error.
func Accepts(a *domain.Automaton, input string) bool {
	current := domain.NewStateSet(a.Start())

	for _, r := range input {
		sym := domain.Symbol(r)
		next := domain.NewStateSet()
		for st := range current {
			next.Union(a.Step(st, sym))
		}
		if next.Len() == 0 {
			return false
		}
		current = next
	}

	return current.Intersects(a.FinalSet())
}

// Trace records the run of a over input: the active states before the first
// symbol and after each consumed one. When a symbol has no move the trace
// ends with an empty set.
func Trace(a *domain.Automaton, input string) []domain.StateSet {
	current := domain.NewStateSet(a.Start())
	steps := []domain.StateSet{current.Clone()}

	for _, r := range input {
		next := domain.NewStateSet()
		for st := range current {
			next.Union(a.Step(st, domain.Symbol(r)))
		}
		steps = append(steps, next.Clone())
		if next.Len() == 0 {
			break
		}
		current = next
	}
	return steps
}
