package main

import (
	"os"

	"github.com/aretw0/chomsky/internal/cli"
	"github.com/aretw0/chomsky/internal/presentation/tui"
	"github.com/aretw0/chomsky/pkg/automata"
	"github.com/spf13/cobra"
)

var acceptsCmd = &cobra.Command{
	Use:   "accepts DEFINITION INPUT...",
	Short: "Run input strings through an automaton",
	Long: `Runs every INPUT through the automaton and tabulates the verdicts.
With --compare the equivalent DFA is built and run alongside.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		compare, _ := cmd.Flags().GetBool("compare")

		tk, closeStore, err := newToolkit(cmd, nil)
		if err != nil {
			return err
		}
		defer closeStore()

		name, a, err := resolveAutomaton(cmd, tk, args[0])
		if err != nil {
			return err
		}
		results := tk.Accepts(cmd.Context(), a, args[1:]...)
		verdicts := make(map[string]bool, len(results))
		for _, r := range results {
			verdicts[r.Input] = r.Accepted
		}

		columns := []tui.Column{{Name: name, Accepts: func(s string) bool { return verdicts[s] }}}
		if compare {
			dfa, err := tk.Determinize(cmd.Context(), a)
			if err != nil {
				return err
			}
			columns = append(columns, tui.Column{Name: "DFA", Accepts: func(s string) bool { return automata.Accepts(dfa, s) }})
		}
		return cli.Print(cmd.OutOrStdout(), tui.NewRenderer(os.Stdout), tui.ValidationTable(args[1:], columns...))
	},
}

func init() {
	rootCmd.AddCommand(acceptsCmd)
	acceptsCmd.Flags().Bool("compare", false, "Also run the inputs through the equivalent DFA")
}
