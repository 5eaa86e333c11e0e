package main

import (
	"fmt"

	"github.com/aretw0/chomsky/internal/cli"
	"github.com/aretw0/chomsky/pkg/schema"
	"github.com/spf13/cobra"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage definitions in the configured store",
}

var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored definitions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tk, closeStore, err := newToolkit(cmd, nil)
		if err != nil {
			return err
		}
		defer closeStore()

		names, err := tk.Store().List(cmd.Context())
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var storePutCmd = &cobra.Command{
	Use:   "put FILE...",
	Short: "Validate definition files and save them",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tk, closeStore, err := newToolkit(cmd, nil)
		if err != nil {
			return err
		}
		defer closeStore()

		for _, path := range args {
			def, err := schema.LoadFile(path)
			if err != nil {
				return err
			}
			if err := buildModel(def); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if err := tk.Store().Save(cmd.Context(), def); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%s)\n", def.Name, def.Kind)
		}
		return nil
	},
}

var storeGetCmd = &cobra.Command{
	Use:   "get NAME",
	Short: "Print a stored definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		tk, closeStore, err := newToolkit(cmd, nil)
		if err != nil {
			return err
		}
		defer closeStore()

		def, err := tk.Store().Load(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return cli.WriteDefinition(cmd.OutOrStdout(), def, output)
	},
}

var storeDeleteCmd = &cobra.Command{
	Use:   "delete NAME...",
	Short: "Delete stored definitions",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tk, closeStore, err := newToolkit(cmd, nil)
		if err != nil {
			return err
		}
		defer closeStore()

		for _, name := range args {
			if err := tk.Store().Delete(cmd.Context(), name); err != nil {
				return err
			}
		}
		return nil
	},
}

// buildModel rejects documents that are well-formed but describe an invalid model.
func buildModel(def *schema.Definition) error {
	var err error
	switch def.Kind {
	case schema.KindAutomaton:
		_, err = def.BuildAutomaton()
	case schema.KindGrammar:
		_, err = def.BuildGrammar()
	}
	return err
}

func init() {
	rootCmd.AddCommand(storeCmd)
	storeCmd.AddCommand(storeListCmd, storePutCmd, storeGetCmd, storeDeleteCmd)
	storeGetCmd.Flags().StringP("output", "o", "", "Write to this file (.yaml or .json) instead of stdout")
}
