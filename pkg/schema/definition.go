package schema

// Kind discriminates the payload of a Definition.
type Kind string

const (
	KindAutomaton Kind = "automaton"
	KindGrammar   Kind = "grammar"
)

// Definition is a named automaton or grammar document.
type Definition struct {
	Kind        Kind           `json:"kind" yaml:"kind" mapstructure:"kind"`
	Name        string         `json:"name" yaml:"name" mapstructure:"name"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	Automaton   *AutomatonSpec `json:"automaton,omitempty" yaml:"automaton,omitempty" mapstructure:"automaton"`
	Grammar     *GrammarSpec   `json:"grammar,omitempty" yaml:"grammar,omitempty" mapstructure:"grammar"`
}

// AutomatonSpec is the serializable form of domain.Automaton.
type AutomatonSpec struct {
	States      []string         `json:"states" yaml:"states" mapstructure:"states"`
	Alphabet    []string         `json:"alphabet" yaml:"alphabet" mapstructure:"alphabet"`
	Start       string           `json:"start" yaml:"start" mapstructure:"start"`
	Finals      []string         `json:"finals" yaml:"finals" mapstructure:"finals"`
	Transitions []TransitionSpec `json:"transitions" yaml:"transitions" mapstructure:"transitions"`
}

// TransitionSpec is one (from, symbol) key with its destinations.
type TransitionSpec struct {
	From   string   `json:"from" yaml:"from" mapstructure:"from"`
	Symbol string   `json:"symbol" yaml:"symbol" mapstructure:"symbol"`
	To     []string `json:"to" yaml:"to,flow" mapstructure:"to"`
}

// GrammarSpec is the serializable form of domain.Grammar.
type GrammarSpec struct {
	NonTerminals []string            `json:"non_terminals" yaml:"non_terminals" mapstructure:"non_terminals"`
	Terminals    []string            `json:"terminals" yaml:"terminals" mapstructure:"terminals"`
	Start        string              `json:"start" yaml:"start" mapstructure:"start"`
	Rules        map[string][]string `json:"rules" yaml:"rules" mapstructure:"rules"`
}

// Clone returns a deep copy of d.
func (d *Definition) Clone() *Definition {
	c := *d
	if d.Automaton != nil {
		a := *d.Automaton
		a.States = cloneStrings(a.States)
		a.Alphabet = cloneStrings(a.Alphabet)
		a.Finals = cloneStrings(a.Finals)
		if a.Transitions != nil {
			a.Transitions = make([]TransitionSpec, len(d.Automaton.Transitions))
			for i, t := range d.Automaton.Transitions {
				t.To = cloneStrings(t.To)
				a.Transitions[i] = t
			}
		}
		c.Automaton = &a
	}
	if d.Grammar != nil {
		g := *d.Grammar
		g.NonTerminals = cloneStrings(g.NonTerminals)
		g.Terminals = cloneStrings(g.Terminals)
		if g.Rules != nil {
			g.Rules = make(map[string][]string, len(d.Grammar.Rules))
			for lhs, alts := range d.Grammar.Rules {
				g.Rules[lhs] = cloneStrings(alts)
			}
		}
		c.Grammar = &g
	}
	return &c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string{}, s...)
}
