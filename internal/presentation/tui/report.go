package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/chomsky/pkg/automata"
	"github.com/aretw0/chomsky/pkg/domain"
	"github.com/aretw0/chomsky/pkg/grammar"
)

// TransitionTable renders δ as a markdown table: one row per state in
// lexical order, one column per symbol. The start state is marked "→" and
// accepting states "*"; a missing move is "∅".
func TransitionTable(a *domain.Automaton) string {
	alphabet := a.Alphabet()

	var sb strings.Builder
	sb.WriteString("| δ |")
	for _, sym := range alphabet {
		fmt.Fprintf(&sb, " %s |", sym)
	}
	sb.WriteString("\n|---|")
	sb.WriteString(strings.Repeat("---|", len(alphabet)))
	sb.WriteString("\n")

	for _, st := range a.States() {
		marker := ""
		if st == a.Start() {
			marker += "→"
		}
		if a.IsFinal(st) {
			marker += "*"
		}
		fmt.Fprintf(&sb, "| %s%s |", marker, cell(string(st)))
		for _, sym := range alphabet {
			dest := a.Step(st, sym)
			switch dest.Len() {
			case 0:
				sb.WriteString(" ∅ |")
			case 1:
				fmt.Fprintf(&sb, " %s |", cell(string(dest.Sorted()[0])))
			default:
				fmt.Fprintf(&sb, " %s |", cell(string(dest.Label())))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// AutomatonSummary lists the components of a and its determinism.
func AutomatonSummary(title string, a *domain.Automaton) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", title)
	fmt.Fprintf(&sb, "- **States** (%d): %s\n", len(a.States()), joinStates(a.States()))
	fmt.Fprintf(&sb, "- **Alphabet**: %s\n", joinSymbols(a.Alphabet()))
	fmt.Fprintf(&sb, "- **Start**: `%s`\n", a.Start())
	fmt.Fprintf(&sb, "- **Accepting**: %s\n", joinStates(a.Finals()))

	conflicts := automata.Conflicts(a)
	if len(conflicts) == 0 {
		sb.WriteString("- **Deterministic**: yes\n")
	} else {
		sb.WriteString("- **Deterministic**: no\n")
		for _, c := range conflicts {
			fmt.Fprintf(&sb, "  - δ(%s, %s) = %s\n", c.Key.From, c.Key.Symbol, joinStates(c.Destinations))
		}
	}
	sb.WriteString("\n")
	sb.WriteString(TransitionTable(a))
	return sb.String()
}

// GrammarListing writes the productions of g grouped by left-hand side.
func GrammarListing(title string, g *domain.Grammar) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", title)
	fmt.Fprintf(&sb, "- **Non-terminals**: %s\n", strings.Join(g.NonTerminals(), ", "))
	fmt.Fprintf(&sb, "- **Terminals**: %s\n", strings.Join(g.Terminals(), ", "))
	fmt.Fprintf(&sb, "- **Start**: `%s`\n\n", g.Start())

	alternatives := make(map[string][]string)
	for _, p := range g.Productions() {
		alternatives[p.Head()] = append(alternatives[p.Head()], p.Body())
	}
	sb.WriteString("```\n")
	for _, lhs := range g.LeftHandSides() {
		fmt.Fprintf(&sb, "%s -> %s\n", lhs, strings.Join(alternatives[lhs], " | "))
	}
	sb.WriteString("```\n")
	return sb.String()
}

// ClassificationReport shows the type of a grammar and the checks behind it.
func ClassificationReport(name string, analysis grammar.Analysis) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", name)
	fmt.Fprintf(&sb, "**%s**\n\n", analysis.Type())

	sb.WriteString("| Check | Result |\n|---|---|\n")
	for _, row := range []struct {
		check string
		ok    bool
	}{
		{"Right-linear", analysis.RightLinear},
		{"Left-linear", analysis.LeftLinear},
		{"Context-free", analysis.ContextFree},
		{"Context-sensitive", analysis.ContextSensitive},
	} {
		fmt.Fprintf(&sb, "| %s | %s |\n", row.check, mark(row.ok))
	}

	if analysis.HasEmpty {
		sb.WriteString("\nThe grammar derives the empty string.\n")
	}
	if len(analysis.Violations) > 0 {
		sb.WriteString("\nFirst violations:\n\n")
		for _, v := range analysis.Violations {
			fmt.Fprintf(&sb, "- %s: `%s`\n", v.Check, v.Production)
		}
	}
	return sb.String()
}

// Column is one automaton in a ValidationTable.
type Column struct {
	Name    string
	Accepts func(input string) bool
}

// ValidationTable runs every input through every column and tabulates the
// verdicts. A final column flags rows where the automata disagree.
func ValidationTable(inputs []string, columns ...Column) string {
	var sb strings.Builder
	sb.WriteString("| Input |")
	for _, c := range columns {
		fmt.Fprintf(&sb, " %s |", c.Name)
	}
	sb.WriteString(" Agree |\n|---|")
	sb.WriteString(strings.Repeat("---|", len(columns)+1))
	sb.WriteString("\n")

	for _, in := range inputs {
		label := in
		if label == "" {
			label = domain.Epsilon
		}
		fmt.Fprintf(&sb, "| `%s` |", label)

		agree := true
		for i, c := range columns {
			ok := c.Accepts(in)
			if i > 0 && ok != columns[0].Accepts(in) {
				agree = false
			}
			fmt.Fprintf(&sb, " %s |", verdict(ok))
		}
		fmt.Fprintf(&sb, " %s |\n", mark(agree))
	}
	return sb.String()
}

func verdict(ok bool) string {
	if ok {
		return "accepted"
	}
	return "rejected"
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

// cell escapes characters that would break a markdown table cell.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

func joinStates(states []domain.State) string {
	parts := make([]string, len(states))
	for i, st := range states {
		parts[i] = "`" + string(st) + "`"
	}
	return strings.Join(parts, ", ")
}

func joinSymbols(symbols []domain.Symbol) string {
	parts := make([]string, len(symbols))
	for i, sym := range symbols {
		parts[i] = "`" + string(sym) + "`"
	}
	return strings.Join(parts, ", ")
}
