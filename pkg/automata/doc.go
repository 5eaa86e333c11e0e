/*
Package automata implements the algorithms that operate on finite automata:
determinism checking, subset construction (NFA to DFA), acceptance testing and
conversion to a right-linear regular grammar.

Every function is pure. Inputs are never mutated and every conversion returns a
freshly allocated value, so results can be shared freely across goroutines.

Subset construction is exponential in the worst case: an automaton with n states
can yield up to 2^n composite states. Use DeterminizeWithLimit when the input is
not trusted.
*/
package automata
