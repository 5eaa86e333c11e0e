package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAutomaton is returned when an automaton definition is structurally inconsistent.
var ErrInvalidAutomaton = errors.New("invalid automaton")

// ErrInvalidGrammar is returned when a grammar definition is structurally inconsistent.
var ErrInvalidGrammar = errors.New("invalid grammar")

// ErrUnsupportedProductionShape is returned when a production cannot be mapped to an automaton move.
var ErrUnsupportedProductionShape = errors.New("unsupported production shape")

// ErrStateExplosion is returned when subset construction exceeds its configured state limit.
var ErrStateExplosion = errors.New("subset construction state limit exceeded")

// ErrGenerationLimit is returned when string generation does not terminate within its step budget.
var ErrGenerationLimit = errors.New("generation step limit exceeded")

// ErrDefinitionNotFound is returned when a named definition cannot be found in a store.
var ErrDefinitionNotFound = errors.New("definition not found")

// Issue is a single structural problem found while constructing a model.
type Issue struct {
	Field  string // e.g. "start", "transitions", "finals"
	Reason string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Field, i.Reason)
}

// InvalidAutomatonError aggregates every issue found in an automaton definition.
type InvalidAutomatonError struct {
	Issues []Issue
}

func (e *InvalidAutomatonError) Error() string {
	return formatIssues(ErrInvalidAutomaton, e.Issues)
}

func (e *InvalidAutomatonError) Unwrap() error {
	return ErrInvalidAutomaton
}

// InvalidGrammarError aggregates every issue found in a grammar definition.
type InvalidGrammarError struct {
	Issues []Issue
}

func (e *InvalidGrammarError) Error() string {
	return formatIssues(ErrInvalidGrammar, e.Issues)
}

func (e *InvalidGrammarError) Unwrap() error {
	return ErrInvalidGrammar
}

// UnsupportedProductionShapeError names the production a conversion could not represent.
type UnsupportedProductionShapeError struct {
	LHS string
	RHS string
}

func (e *UnsupportedProductionShapeError) Error() string {
	return fmt.Sprintf("%v: %s -> %s", ErrUnsupportedProductionShape, e.LHS, displayRHS(e.RHS))
}

func (e *UnsupportedProductionShapeError) Unwrap() error {
	return ErrUnsupportedProductionShape
}

func formatIssues(base error, issues []Issue) string {
	if len(issues) == 1 {
		return fmt.Sprintf("%v: %s", base, issues[0])
	}
	parts := make([]string, len(issues))
	for i, issue := range issues {
		parts[i] = issue.String()
	}
	return fmt.Sprintf("%v: %d issues:\n- %s", base, len(issues), strings.Join(parts, "\n- "))
}

func displayRHS(rhs string) string {
	if IsEmptyProduction(rhs) {
		return Epsilon
	}
	return rhs
}
