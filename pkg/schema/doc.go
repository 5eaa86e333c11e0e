// Package schema defines the document format used to store and exchange
// automata and grammars.
//
// A Definition is a small, fixed-shape document. It is decoded from YAML
// (gopkg.in/yaml.v3) or JSON into a generic map first and then mapped onto the
// typed structs with mapstructure, so both formats share one set of rules:
//
//	kind: automaton
//	name: lab-nfa
//	automaton:
//	  states: [q0, q1, q2, q3]
//	  alphabet: [a, b, c]
//	  start: q0
//	  finals: [q3]
//	  transitions:
//	    - {from: q0, symbol: a, to: [q0, q1]}
//	    - {from: q1, symbol: b, to: q1}
//
// A single destination may be written as a scalar. Grammar rules map a
// left-hand side to its alternatives, each written as a string that is split
// into declared symbols:
//
//	kind: grammar
//	name: lab-1
//	grammar:
//	  non_terminals: [S, A, B, C]
//	  terminals: [a, b, c]
//	  start: S
//	  rules:
//	    S: [aA]
//	    A: [bA, aB]
//
// Symbols that YAML would read as numbers or booleans should be quoted.
package schema
