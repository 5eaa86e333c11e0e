/*
Package domain contains the core models of the chomsky toolkit.

It defines finite automata and formal grammars as immutable values, together
with the error taxonomy shared by every algorithm. This package is kept pure
and free of I/O or persistence concerns.

# Key Entities

  - Automaton: states, alphabet, a set-valued transition relation, a start state and accepting states.
    Deterministic and nondeterministic automata share this representation.
  - StateSet: a set of states; composite DFA states are named by StateSet.Label (e.g. "{q0,q1}").
  - Grammar: non-terminals, terminals, ordered productions and a start symbol.
  - ChomskyType: the four levels of the Chomsky hierarchy.

Constructors validate their input and report every problem in one error
(InvalidAutomatonError, InvalidGrammarError) so malformed definitions fail fast
instead of silently changing the represented language.
*/
package domain
