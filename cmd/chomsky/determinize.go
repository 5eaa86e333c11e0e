package main

import (
	"github.com/aretw0/chomsky/internal/cli"
	"github.com/aretw0/chomsky/pkg/schema"
	"github.com/spf13/cobra"
)

var determinizeCmd = &cobra.Command{
	Use:   "determinize DEFINITION",
	Short: "Build the equivalent DFA by subset construction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		save, _ := cmd.Flags().GetBool("save")

		tk, closeStore, err := newToolkit(cmd, nil)
		if err != nil {
			return err
		}
		defer closeStore()

		name, a, err := resolveAutomaton(cmd, tk, args[0])
		if err != nil {
			return err
		}
		dfa, err := tk.Determinize(cmd.Context(), a)
		if err != nil {
			return err
		}

		def := schema.FromAutomaton(name+"-dfa", dfa)
		if save {
			if err := tk.Store().Save(cmd.Context(), def); err != nil {
				return err
			}
		}
		return cli.WriteDefinition(cmd.OutOrStdout(), def, output)
	},
}

func init() {
	rootCmd.AddCommand(determinizeCmd)
	determinizeCmd.Flags().StringP("output", "o", "", "Write the DFA to this file (.yaml or .json) instead of stdout")
	determinizeCmd.Flags().Bool("save", false, "Also save the DFA in the configured store as <name>-dfa")
}
