package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/chomsky/pkg/domain"
)

// Overlay highlights a run of the automaton on the diagram.
type Overlay struct {
	Visited []domain.State
	Current []domain.State
}

// OverlayFromTrace marks every state of a trace as visited and the last
// step as current.
func OverlayFromTrace(steps []domain.StateSet) *Overlay {
	o := &Overlay{}
	seen := make(map[domain.State]bool)
	for _, step := range steps {
		for _, st := range step.Sorted() {
			if !seen[st] {
				seen[st] = true
				o.Visited = append(o.Visited, st)
			}
		}
	}
	if len(steps) > 0 {
		o.Current = steps[len(steps)-1].Sorted()
	}
	return o
}

// Mermaid produces a stateDiagram-v2 for a. States get positional ids
// (s0, s1, ...) and keep their names as labels, so composite names such as
// "{q0,q1}" render unchanged. Parallel edges are merged into one edge whose
// label lists the symbols.
func Mermaid(a *domain.Automaton, overlay *Overlay) string {
	ids := stateIDs(a)

	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")
	sb.WriteString("    direction LR\n")

	for _, st := range a.States() {
		fmt.Fprintf(&sb, "    state \"%s\" as %s\n", escapeLabel(string(st)), ids[st])
	}

	fmt.Fprintf(&sb, "    [*] --> %s\n", ids[a.Start()])
	for _, e := range groupEdges(a) {
		fmt.Fprintf(&sb, "    %s --> %s: %s\n", ids[e.from], ids[e.to], strings.Join(e.symbols, ","))
	}
	for _, st := range a.Finals() {
		fmt.Fprintf(&sb, "    %s --> [*]\n", ids[st])
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) so the highlight stays readable on light and dark themes.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000\n")

		current := make(map[domain.State]bool)
		for _, st := range overlay.Current {
			current[st] = true
		}
		styled := make(map[domain.State]bool)
		for _, st := range overlay.Visited {
			id, ok := ids[st]
			if !ok || styled[st] || current[st] {
				continue
			}
			styled[st] = true
			fmt.Fprintf(&sb, "    class %s visited\n", id)
		}
		for _, st := range overlay.Current {
			if id, ok := ids[st]; ok {
				fmt.Fprintf(&sb, "    class %s current\n", id)
			}
		}
	}

	return sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
