package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/chomsky/pkg/domain"
)

// DOT produces a Graphviz digraph for a: left to right, accepting states as
// double circles and an invisible point node marking the start.
func DOT(a *domain.Automaton) string {
	ids := stateIDs(a)

	var sb strings.Builder
	sb.WriteString("digraph automaton {\n")
	sb.WriteString("    rankdir=LR;\n")
	sb.WriteString("    __start__ [shape=point, style=invis];\n")

	for _, st := range a.States() {
		shape := "circle"
		if a.IsFinal(st) {
			shape = "doublecircle"
		}
		fmt.Fprintf(&sb, "    %s [label=%s, shape=%s];\n", ids[st], strconv.Quote(string(st)), shape)
	}

	fmt.Fprintf(&sb, "    __start__ -> %s;\n", ids[a.Start()])
	for _, e := range groupEdges(a) {
		fmt.Fprintf(&sb, "    %s -> %s [label=%s];\n", ids[e.from], ids[e.to], strconv.Quote(strings.Join(e.symbols, ",")))
	}

	sb.WriteString("}\n")
	return sb.String()
}
