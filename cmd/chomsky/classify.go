package main

import (
	"encoding/json"
	"os"

	"github.com/aretw0/chomsky/internal/cli"
	"github.com/aretw0/chomsky/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify DEFINITION",
	Short: "Place a grammar in the Chomsky hierarchy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		tk, closeStore, err := newToolkit(cmd, nil)
		if err != nil {
			return err
		}
		defer closeStore()

		name, g, err := resolveGrammar(cmd, tk, args[0])
		if err != nil {
			return err
		}
		analysis := tk.Classify(cmd.Context(), g)

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"name":     name,
				"type":     analysis.Type(),
				"analysis": analysis,
			})
		}
		out := cmd.OutOrStdout()
		render := tui.NewRenderer(os.Stdout)
		if err := cli.Print(out, render, tui.GrammarListing(name, g)); err != nil {
			return err
		}
		return cli.Print(out, render, tui.ClassificationReport("Classification", analysis))
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().Bool("json", false, "Print the analysis as JSON")
}
