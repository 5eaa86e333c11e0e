package domain

// Epsilon is the conventional spelling of the empty right-hand side.
// An empty string is accepted as well.
const Epsilon = "ε"

// IsEmptyProduction reports whether rhs denotes the empty string.
func IsEmptyProduction(rhs string) bool {
	return rhs == "" || rhs == Epsilon
}
