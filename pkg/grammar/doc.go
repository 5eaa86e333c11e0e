/*
Package grammar implements the algorithms that operate on formal grammars:
conversion of right-linear grammars to finite automata, Chomsky hierarchy
classification and random string generation.

Conversion never skips productions it cannot represent; it fails with a
*domain.UnsupportedProductionShapeError naming the offending rule instead.
*/
package grammar
