package main

import (
	"fmt"

	"github.com/aretw0/chomsky/pkg/domain"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate DEFINITION",
	Short: "Derive random strings from a grammar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetInt64("seed")

		tk, closeStore, err := newToolkit(cmd, nil)
		if err != nil {
			return err
		}
		defer closeStore()

		_, g, err := resolveGrammar(cmd, tk, args[0])
		if err != nil {
			return err
		}
		out, err := tk.Generate(cmd.Context(), g, n, seed)
		if err != nil {
			return err
		}
		for _, s := range out {
			if s == "" {
				s = domain.Epsilon
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntP("count", "n", 5, "Number of strings to derive")
	generateCmd.Flags().Int64("seed", 0, "Random seed")
}
