package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/chomsky"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of chomsky",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "chomsky version %s\n", strings.TrimSpace(chomsky.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
