package main

import (
	"fmt"

	"github.com/aretw0/chomsky/internal/cli"
	"github.com/aretw0/chomsky/pkg/schema"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert DEFINITION",
	Short: "Convert an automaton to a regular grammar or a right-linear grammar to an automaton",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		tk, closeStore, err := newToolkit(cmd, nil)
		if err != nil {
			return err
		}
		defer closeStore()

		def, err := tk.Resolve(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		var result *schema.Definition
		switch def.Kind {
		case schema.KindAutomaton:
			a, err := def.BuildAutomaton()
			if err != nil {
				return err
			}
			g, err := tk.ToGrammar(cmd.Context(), a)
			if err != nil {
				return err
			}
			result = schema.FromGrammar(def.Name+"-grammar", g)
		case schema.KindGrammar:
			g, err := def.BuildGrammar()
			if err != nil {
				return err
			}
			a, err := tk.ToAutomaton(cmd.Context(), g)
			if err != nil {
				return err
			}
			result = schema.FromAutomaton(def.Name+"-automaton", a)
		default:
			return fmt.Errorf("unsupported kind %q", def.Kind)
		}
		return cli.WriteDefinition(cmd.OutOrStdout(), result, output)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringP("output", "o", "", "Write the result to this file (.yaml or .json) instead of stdout")
}
