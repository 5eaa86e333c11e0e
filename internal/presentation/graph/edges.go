package graph

import (
	"fmt"

	"github.com/aretw0/chomsky/pkg/domain"
)

type edge struct {
	from, to domain.State
	symbols  []string
}

// groupEdges merges the triples of a by (source, destination), keeping the
// order of first appearance in the sorted triple list.
func groupEdges(a *domain.Automaton) []edge {
	type pair struct{ from, to domain.State }

	index := make(map[pair]int)
	var edges []edge
	for _, t := range a.Triples() {
		p := pair{t.From, t.To}
		i, ok := index[p]
		if !ok {
			i = len(edges)
			index[p] = i
			edges = append(edges, edge{from: t.From, to: t.To})
		}
		edges[i].symbols = append(edges[i].symbols, string(t.Symbol))
	}
	return edges
}

func stateIDs(a *domain.Automaton) map[domain.State]string {
	ids := make(map[domain.State]string)
	for i, st := range a.States() {
		ids[st] = fmt.Sprintf("s%d", i)
	}
	return ids
}
