package automata

import (
	"fmt"

	"github.com/aretw0/chomsky/pkg/domain"
)

// Determinize returns a deterministic automaton accepting the same language
// as a. An automaton that is already deterministic is returned unchanged;
// otherwise SubsetConstruction runs without a state limit.
func Determinize(a *domain.Automaton) (*domain.Automaton, error) {
	return DeterminizeWithLimit(a, 0)
}

// DeterminizeWithLimit is Determinize with an upper bound on the number of
// composite states. A limit of zero means unlimited.
func DeterminizeWithLimit(a *domain.Automaton, maxStates int) (*domain.Automaton, error) {
	if IsDeterministic(a) {
		return a, nil
	}
	return SubsetConstruction(a, maxStates)
}

// SubsetConstruction converts a into an equivalent DFA whose states are the
// canonical labels of the reachable subsets of a's states (e.g. "{q0,q1}").
// When state names contain braces or commas two subsets may render the same
// label; the one discovered later gets a primed name ("{x,y}'").
//
// Subsets are explored breadth-first from {start}, and symbols are visited in
// lexical order, so the result is identical across runs. Moves leading to the
// empty subset are omitted: no trap state is synthesized, and input needing
// such a move is rejected by the absence of a transition. A subset accepts
// iff it contains an accepting state of a.
//
// It returns domain.ErrStateExplosion once more than maxStates subsets have
// been discovered (maxStates <= 0 disables the check).
func SubsetConstruction(a *domain.Automaton, maxStates int) (*domain.Automaton, error) {
	alphabet := a.Alphabet()
	finals := a.FinalSet()

	// Subsets are identified by Key; their labels only name the DFA states.
	// A label already taken by a different subset is primed.
	names := make(map[string]domain.State)
	subsets := make(map[domain.State]domain.StateSet)
	var order, queue []domain.State

	visit := func(set domain.StateSet) domain.State {
		label := set.Label()
		for {
			if _, taken := subsets[label]; !taken {
				break
			}
			label += "'"
		}
		names[set.Key()] = label
		subsets[label] = set
		order = append(order, label)
		queue = append(queue, label)
		return label
	}

	startLabel := visit(domain.NewStateSet(a.Start()))

	transitions := make(domain.Transitions)
	var accepting []domain.State

	for len(queue) > 0 {
		label := queue[0]
		queue = queue[1:]
		current := subsets[label]

		if current.Intersects(finals) {
			accepting = append(accepting, label)
		}

		for _, sym := range alphabet {
			next := domain.NewStateSet()
			for _, st := range current.Sorted() {
				next.Union(a.Step(st, sym))
			}
			if next.Len() == 0 {
				continue
			}

			nextLabel, seen := names[next.Key()]
			if !seen {
				if maxStates > 0 && len(subsets) >= maxStates {
					return nil, fmt.Errorf("%w: more than %d states", domain.ErrStateExplosion, maxStates)
				}
				nextLabel = visit(next)
			}
			transitions.Add(label, sym, nextLabel)
		}
	}

	dfa, err := domain.NewAutomaton(order, alphabet, transitions, startLabel, accepting)
	if err != nil {
		return nil, fmt.Errorf("subset construction produced an inconsistent automaton: %w", err)
	}
	return dfa, nil
}
