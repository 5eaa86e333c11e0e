package main

import (
	"os"

	"github.com/aretw0/chomsky"
	"github.com/aretw0/chomsky/internal/cli"
	"github.com/aretw0/chomsky/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the lab automaton and grammar",
	Long: `Runs the lab scenario end to end: string generation from the lab 1
grammar, determinism of the lab NFA, conversion to a regular grammar and its
classification, subset construction, and validation of sample strings on both
automata. Diagrams are written to --graphs; a missing Graphviz install only
skips the PNG files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		graphs, _ := cmd.Flags().GetString("graphs")
		seed, _ := cmd.Flags().GetInt64("seed")
		quiet, _ := cmd.Flags().GetBool("quiet")

		tk, closeStore, err := newToolkit(cmd, nil)
		if err != nil {
			return err
		}
		defer closeStore()

		out := cmd.OutOrStdout()
		if !quiet && tui.IsTerminal(os.Stdout) {
			tui.PrintBanner(out, chomsky.Version)
		}
		return cli.RunDemo(cmd.Context(), tk, cli.DemoOptions{
			Out:      out,
			Render:   tui.NewRenderer(os.Stdout),
			GraphDir: graphs,
			Seed:     seed,
		})
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().String("graphs", "graphs", "Directory for diagrams (empty to skip)")
	demoCmd.Flags().Int64("seed", 1, "Seed for string generation")
	demoCmd.Flags().BoolP("quiet", "q", false, "Do not print the banner")
}
