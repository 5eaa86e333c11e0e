package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/chomsky/internal/presentation/graph"
	"github.com/aretw0/chomsky/pkg/automata"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph DEFINITION",
	Short: "Render an automaton as Mermaid, Graphviz DOT or PNG",
	Long: `Renders the automaton. Mermaid output can highlight the path taken by an
input with --trace. PNG output needs the Graphviz "dot" binary and an --output path.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		trace, _ := cmd.Flags().GetString("trace")

		tk, closeStore, err := newToolkit(cmd, nil)
		if err != nil {
			return err
		}
		defer closeStore()

		_, a, err := resolveAutomaton(cmd, tk, args[0])
		if err != nil {
			return err
		}

		var text string
		switch format {
		case "mermaid":
			var overlay *graph.Overlay
			if cmd.Flags().Changed("trace") {
				overlay = graph.OverlayFromTrace(automata.Trace(a, trace))
			}
			text = graph.Mermaid(a, overlay)
		case "dot":
			text = graph.DOT(a)
		case "png":
			if output == "" {
				return errors.New("png output requires --output")
			}
			err := graph.RenderPNG(cmd.Context(), a, output)
			if errors.Is(err, graph.ErrRendererUnavailable) {
				fmt.Fprintf(cmd.ErrOrStderr(), "Skipping PNG: %v\n", err)
				return nil
			}
			return err
		default:
			return fmt.Errorf("unknown format %q: expected mermaid, dot or png", format)
		}

		if output == "" {
			_, err := io.WriteString(cmd.OutOrStdout(), text)
			return err
		}
		return os.WriteFile(output, []byte(text), 0644)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringP("format", "f", "mermaid", "Output format: mermaid, dot or png")
	graphCmd.Flags().StringP("output", "o", "", "Output file (stdout when empty; required for png)")
	graphCmd.Flags().String("trace", "", "Highlight the states visited while reading this input (mermaid only)")
}
