package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/chomsky"
	"github.com/aretw0/chomsky/internal/presentation/graph"
	"github.com/aretw0/chomsky/internal/presentation/tui"
	"github.com/aretw0/chomsky/pkg/automata"
	"github.com/aretw0/chomsky/pkg/domain"
	"github.com/aretw0/chomsky/pkg/fixtures"
)

// DemoOptions configures RunDemo.
type DemoOptions struct {
	Out    io.Writer
	Render tui.Renderer
	// GraphDir receives the Mermaid and PNG renderings; empty skips them.
	GraphDir string
	Seed     int64
}

// RunDemo walks the lab scenario: the lab-1 grammar (generation and
// conversion) followed by the lab NFA (determinism, conversion to a grammar,
// classification, subset construction, validation and rendering).
func RunDemo(ctx context.Context, tk *chomsky.Toolkit, opts DemoOptions) error {
	if opts.Render == nil {
		opts.Render = tui.Plain
	}
	show := func(markdown string) error {
		return Print(opts.Out, opts.Render, markdown)
	}

	// Lab 1: grammar -> automaton
	lab1 := fixtures.LabGrammar()
	if err := show(tui.GrammarListing("Lab 1 grammar", lab1)); err != nil {
		return err
	}
	generated, err := tk.Generate(ctx, lab1, 5, opts.Seed)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	lab1FA, err := tk.ToAutomaton(ctx, lab1)
	if err != nil {
		return err
	}
	if err := show(tui.ValidationTable(append(generated, "abc"),
		tui.Column{Name: "Lab 1 FA", Accepts: func(s string) bool { return automata.Accepts(lab1FA, s) }},
	)); err != nil {
		return err
	}

	// Lab 2: the NFA
	nfa := fixtures.LabNFA()
	if err := show(tui.AutomatonSummary("Lab NFA", nfa)); err != nil {
		return err
	}

	g, err := tk.ToGrammar(ctx, nfa)
	if err != nil {
		return err
	}
	if err := show(tui.GrammarListing("NFA as a regular grammar", g)); err != nil {
		return err
	}
	if err := show(tui.ClassificationReport("Classification of the converted grammar", tk.Classify(ctx, g))); err != nil {
		return err
	}
	if err := show(tui.ClassificationReport("Classification of the lab 1 grammar", tk.Classify(ctx, lab1))); err != nil {
		return err
	}

	dfa, err := tk.Determinize(ctx, nfa)
	if err != nil {
		return err
	}
	if err := show(tui.AutomatonSummary("DFA (subset construction)", dfa)); err != nil {
		return err
	}

	if err := show(tui.ValidationTable(fixtures.LabInputs,
		tui.Column{Name: "NFA", Accepts: func(s string) bool { return automata.Accepts(nfa, s) }},
		tui.Column{Name: "DFA", Accepts: func(s string) bool { return automata.Accepts(dfa, s) }},
	)); err != nil {
		return err
	}

	if opts.GraphDir == "" {
		return nil
	}
	return writeGraphs(ctx, opts.Out, opts.GraphDir, []namedAutomaton{
		{name: "ndfa_graph", a: nfa},
		{name: "dfa_graph", a: dfa},
	})
}

type namedAutomaton struct {
	name string
	a    *domain.Automaton
}

// writeGraphs writes <name>.mmd for every automaton and, when Graphviz is
// installed, <name>.png. A missing renderer is reported, never fatal.
func writeGraphs(ctx context.Context, w io.Writer, dir string, graphs []namedAutomaton) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create graph directory: %w", err)
	}
	for _, na := range graphs {
		mmd := filepath.Join(dir, na.name+".mmd")
		if err := os.WriteFile(mmd, []byte(graph.Mermaid(na.a, nil)), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", mmd, err)
		}
		printSystemMessage(w, "Mermaid diagram written to %s", mmd)

		png := filepath.Join(dir, na.name+".png")
		err := graph.RenderPNG(ctx, na.a, png)
		switch {
		case errors.Is(err, graph.ErrRendererUnavailable):
			printSystemMessage(w, "%s", tui.Status(false, "Graphviz not installed, skipping "+png))
		case err != nil:
			printSystemMessage(w, "%s", tui.Status(false, strings.TrimSpace(err.Error())))
		default:
			printSystemMessage(w, "%s", tui.Status(true, "Graph written to "+png))
		}
	}
	return nil
}
