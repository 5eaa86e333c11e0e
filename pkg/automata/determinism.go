package automata

import "github.com/aretw0/chomsky/pkg/domain"

// IsDeterministic reports whether every defined (state, symbol) key has
// exactly one destination. An automaton without transitions is deterministic.
func IsDeterministic(a *domain.Automaton) bool {
	for _, dest := range a.Transitions() {
		if dest.Len() > 1 {
			return false
		}
	}
	return true
}

// Conflicts lists the keys that make the automaton nondeterministic,
// sorted by (state, symbol).
func Conflicts(a *domain.Automaton) []domain.Conflict {
	tr := a.Transitions()
	var out []domain.Conflict
	for _, k := range tr.Keys() {
		if tr[k].Len() > 1 {
			out = append(out, domain.Conflict{Key: k, Destinations: tr[k].Sorted()})
		}
	}
	return out
}
