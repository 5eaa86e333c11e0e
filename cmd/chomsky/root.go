package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/chomsky"
	"github.com/aretw0/chomsky/internal/cli"
	"github.com/aretw0/chomsky/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chomsky",
	Short: "Chomsky is a toolkit for finite automata and formal grammars",
	Long: `Chomsky checks and converts finite automata and regular grammars:
determinism, subset construction, automaton <-> grammar conversion,
Chomsky hierarchy classification, acceptance and string generation.

Commands that take a DEFINITION accept a YAML/JSON file path or the name of a
definition in the configured store.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx := cli.NewSignalContext(context.Background())
	defer ctx.Cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text or json")
	rootCmd.PersistentFlags().String("store", "memory", "Definition store: memory, file:DIR, loam:DIR or redis://HOST:PORT/DB")
	rootCmd.PersistentFlags().Int("state-limit", chomsky.DefaultStateLimit, "Maximum number of DFA states built by subset construction")
}

func config(cmd *cobra.Command) cli.Config {
	flags := cmd.Flags()
	level, _ := flags.GetString("log-level")
	format, _ := flags.GetString("log-format")
	store, _ := flags.GetString("store")
	limit, _ := flags.GetInt("state-limit")
	// only serve and mcp define --read-only
	readOnly, _ := flags.GetBool("read-only")
	return cli.Config{LogLevel: level, LogFormat: format, Store: store, StateLimit: limit, ReadOnly: readOnly}
}

// newToolkit builds the toolkit from the persistent flags. Callers must
// invoke the returned close function.
func newToolkit(cmd *cobra.Command, reg prometheus.Registerer) (*chomsky.Toolkit, func() error, error) {
	return cli.NewToolkit(cmd.Context(), config(cmd), reg)
}

func resolveAutomaton(cmd *cobra.Command, tk *chomsky.Toolkit, ref string) (string, *domain.Automaton, error) {
	def, err := tk.Resolve(cmd.Context(), ref)
	if err != nil {
		return "", nil, err
	}
	a, err := def.BuildAutomaton()
	if err != nil {
		return "", nil, err
	}
	return def.Name, a, nil
}

func resolveGrammar(cmd *cobra.Command, tk *chomsky.Toolkit, ref string) (string, *domain.Grammar, error) {
	def, err := tk.Resolve(cmd.Context(), ref)
	if err != nil {
		return "", nil, err
	}
	g, err := def.BuildGrammar()
	if err != nil {
		return "", nil, err
	}
	return def.Name, g, nil
}
