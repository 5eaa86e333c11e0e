package grammar

import "github.com/aretw0/chomsky/pkg/domain"

// Analysis holds the independent shape checks behind a classification.
// Each flag starts true and is cleared for good by the first production
// that violates it.
type Analysis struct {
	RightLinear      bool `json:"right_linear"`
	LeftLinear       bool `json:"left_linear"`
	ContextFree      bool `json:"context_free"`
	ContextSensitive bool `json:"context_sensitive"`
	HasEmpty         bool `json:"has_empty"`

	// Violations records, per cleared flag, the production that cleared it.
	Violations []Violation `json:"violations,omitempty"`
}

// Violation names the first production that broke a shape check.
type Violation struct {
	Check      string            `json:"check"`
	Production domain.Production `json:"production"`
}

// Check names used in Violation.
const (
	CheckRightLinear      = "right_linear"
	CheckLeftLinear       = "left_linear"
	CheckContextFree      = "context_free"
	CheckContextSensitive = "context_sensitive"
)

// Type returns the most restrictive class satisfied by every production.
func (a Analysis) Type() domain.ChomskyType {
	switch {
	case a.RightLinear || a.LeftLinear:
		return domain.Type3
	case a.ContextFree:
		return domain.Type2
	case a.ContextSensitive:
		return domain.Type1
	default:
		return domain.Type0
	}
}

// Classify returns the position of g in the Chomsky hierarchy.
func Classify(g *domain.Grammar) domain.ChomskyType {
	return Analyze(g).Type()
}

// Analyze inspects every production of g in a single pass.
//
//   - Type 3: every left-hand side is one non-terminal and every production is
//     either a single terminal or follows one linear pattern across the whole
//     grammar (terminal then non-terminal, or non-terminal then terminal).
//   - Type 2: every left-hand side is one non-terminal.
//   - Type 1: |lhs| <= |rhs| for every production. An empty right-hand side is
//     tolerated only for the start symbol, and only if the start symbol never
//     appears on a right-hand side.
func Analyze(g *domain.Grammar) Analysis {
	a := Analysis{
		RightLinear:      true,
		LeftLinear:       true,
		ContextFree:      true,
		ContextSensitive: true,
	}

	start := g.Start()
	startOnRHS := false
	var startEmpty *domain.Production

	for _, p := range g.Productions() {
		for _, sym := range p.RHS {
			if sym == start {
				startOnRHS = true
			}
		}

		if len(p.LHS) != 1 || !g.IsNonTerminal(p.LHS[0]) {
			a.clear(&a.ContextFree, CheckContextFree, p)
			a.clear(&a.RightLinear, CheckRightLinear, p)
			a.clear(&a.LeftLinear, CheckLeftLinear, p)
		}

		if p.IsEmpty() {
			a.HasEmpty = true
			if len(p.LHS) != 1 || p.LHS[0] != start {
				a.clear(&a.ContextSensitive, CheckContextSensitive, p)
			} else if startEmpty == nil {
				pp := p
				startEmpty = &pp
			}
			continue
		}

		if len(p.LHS) > len(p.RHS) {
			a.clear(&a.ContextSensitive, CheckContextSensitive, p)
		}

		if a.RightLinear && !isRightLinear(g, p.RHS) {
			a.clear(&a.RightLinear, CheckRightLinear, p)
		}
		if a.LeftLinear && !isLeftLinear(g, p.RHS) {
			a.clear(&a.LeftLinear, CheckLeftLinear, p)
		}
	}

	if startEmpty != nil && startOnRHS {
		a.clear(&a.ContextSensitive, CheckContextSensitive, *startEmpty)
	}

	return a
}

func (a *Analysis) clear(flag *bool, check string, p domain.Production) {
	if !*flag {
		return
	}
	*flag = false
	a.Violations = append(a.Violations, Violation{Check: check, Production: p})
}

// isRightLinear accepts "a" and "aB".
func isRightLinear(g *domain.Grammar, rhs []string) bool {
	switch len(rhs) {
	case 1:
		return g.IsTerminal(rhs[0])
	case 2:
		return g.IsTerminal(rhs[0]) && g.IsNonTerminal(rhs[1])
	default:
		return false
	}
}

// isLeftLinear accepts "a" and "Ba".
func isLeftLinear(g *domain.Grammar, rhs []string) bool {
	switch len(rhs) {
	case 1:
		return g.IsTerminal(rhs[0])
	case 2:
		return g.IsNonTerminal(rhs[0]) && g.IsTerminal(rhs[1])
	default:
		return false
	}
}
