/*
Package ports defines the driven ports (interfaces) of the chomsky toolkit.

These interfaces decouple the algorithms and the outer surfaces (CLI, HTTP,
MCP) from concrete storage backends.

# Key Interfaces

  - DefinitionStore: persists named automaton and grammar definitions
    (implemented in memory, on Redis and on a Loam document vault).

RunDefinitionStoreContract is the shared test suite every implementation runs.
*/
package ports
