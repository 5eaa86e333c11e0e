/*
Package chomsky is a toolkit for finite automata and formal grammars.

It checks automata for determinism, converts nondeterministic automata to
deterministic ones by subset construction, converts between finite automata
and right-linear grammars, classifies grammars in the Chomsky hierarchy and
simulates automata on input strings.

The algorithms live in pkg/automata and pkg/grammar and work on the immutable
models of pkg/domain. Toolkit bundles them with structured logging,
Prometheus metrics and a definition store, and is what the CLI, the HTTP API
and the MCP server are built on.

# Usage

	tk := chomsky.New(chomsky.WithLogger(logger))

	nfa := fixtures.LabNFA()
	report := tk.CheckDeterminism(ctx, nfa) // report.Deterministic == false

	dfa, err := tk.Determinize(ctx, nfa)
	if err != nil {
		log.Fatal(err)
	}
	for _, r := range tk.Accepts(ctx, dfa, "aac", "ab") {
		fmt.Println(r.Input, r.Accepted)
	}

Definitions can be stored by name (see pkg/ports) and loaded from YAML or
JSON files (see pkg/schema).
*/
package chomsky
