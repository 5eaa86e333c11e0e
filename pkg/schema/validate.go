package schema

import (
	"fmt"
	"regexp"
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// ValidName reports whether name can identify a stored definition.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Validate checks the document structure. It does not check the model
// itself (undeclared states, symbols and so on); BuildAutomaton and
// BuildGrammar report those through the domain errors.
// Returns an *AggregateError with every failure found.
func (d *Definition) Validate() error {
	var errs []error
	fail := func(key, reason string, value any) {
		errs = append(errs, &ValidationError{Key: key, Reason: reason, Value: value})
	}

	if !ValidName(d.Name) {
		fail("name", "must start with a letter or digit and contain only letters, digits, '.', '_' or '-'", d.Name)
	}

	switch d.Kind {
	case KindAutomaton:
		if d.Automaton == nil {
			fail("automaton", "required for kind automaton", nil)
		}
		if d.Grammar != nil {
			fail("grammar", "not allowed for kind automaton", nil)
		}
	case KindGrammar:
		if d.Grammar == nil {
			fail("grammar", "required for kind grammar", nil)
		}
		if d.Automaton != nil {
			fail("automaton", "not allowed for kind grammar", nil)
		}
	default:
		fail("kind", fmt.Sprintf("must be %q or %q", KindAutomaton, KindGrammar), d.Kind)
	}

	if a := d.Automaton; a != nil {
		if len(a.States) == 0 {
			fail("automaton.states", "required", nil)
		}
		if a.Start == "" {
			fail("automaton.start", "required", nil)
		}
		for i, t := range a.Transitions {
			if t.From == "" || t.Symbol == "" {
				fail(fmt.Sprintf("automaton.transitions[%d]", i), "from and symbol are required", nil)
			}
			if len(t.To) == 0 {
				fail(fmt.Sprintf("automaton.transitions[%d].to", i), "at least one destination is required", nil)
			}
		}
	}

	if g := d.Grammar; g != nil {
		if len(g.NonTerminals) == 0 {
			fail("grammar.non_terminals", "required", nil)
		}
		if g.Start == "" {
			fail("grammar.start", "required", nil)
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
