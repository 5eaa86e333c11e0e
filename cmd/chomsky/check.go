package main

import (
	"errors"
	"os"

	"github.com/aretw0/chomsky/internal/cli"
	"github.com/aretw0/chomsky/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var errNondeterministic = errors.New("automaton is not deterministic")

var checkCmd = &cobra.Command{
	Use:   "check DEFINITION",
	Short: "Report whether an automaton is deterministic",
	Long: `Prints the automaton with its transition table and every (state, symbol)
pair with more than one destination. With --strict the command fails when the
automaton is not deterministic.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict")

		tk, closeStore, err := newToolkit(cmd, nil)
		if err != nil {
			return err
		}
		defer closeStore()

		name, a, err := resolveAutomaton(cmd, tk, args[0])
		if err != nil {
			return err
		}
		report := tk.CheckDeterminism(cmd.Context(), a)
		if err := cli.Print(cmd.OutOrStdout(), tui.NewRenderer(os.Stdout), tui.AutomatonSummary(name, a)); err != nil {
			return err
		}
		if strict && !report.Deterministic {
			return errNondeterministic
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("strict", false, "Exit with an error when the automaton is nondeterministic")
}
