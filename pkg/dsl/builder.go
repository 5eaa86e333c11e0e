package dsl

import (
	"fmt"

	"github.com/aretw0/chomsky/pkg/domain"
)

// AutomatonBuilder manages automaton construction.
type AutomatonBuilder struct {
	alphabet []domain.Symbol
	order    []domain.State
	states   map[domain.State]*StateBuilder
	start    domain.State
	hasStart bool
}

// NewAutomaton creates a builder over the given alphabet.
func NewAutomaton(alphabet ...string) *AutomatonBuilder {
	b := &AutomatonBuilder{
		states: make(map[domain.State]*StateBuilder),
	}
	for _, sym := range alphabet {
		b.alphabet = append(b.alphabet, domain.Symbol(sym))
	}
	return b
}

// Symbols extends the alphabet.
func (b *AutomatonBuilder) Symbols(symbols ...string) *AutomatonBuilder {
	for _, sym := range symbols {
		b.alphabet = append(b.alphabet, domain.Symbol(sym))
	}
	return b
}

// State declares a state. If the state already exists, it returns the existing builder.
func (b *AutomatonBuilder) State(id string) *StateBuilder {
	st := domain.State(id)
	if sb, ok := b.states[st]; ok {
		return sb
	}
	sb := &StateBuilder{id: st, builder: b}
	b.states[st] = sb
	b.order = append(b.order, st)
	return sb
}

// Build validates and compiles the automaton.
func (b *AutomatonBuilder) Build() (*domain.Automaton, error) {
	if !b.hasStart {
		return nil, fmt.Errorf("%w: no start state declared", domain.ErrInvalidAutomaton)
	}

	transitions := make(domain.Transitions)
	var finals []domain.State
	for _, st := range b.order {
		sb := b.states[st]
		for _, m := range sb.moves {
			transitions.Add(st, m.symbol, m.to...)
		}
		if sb.final {
			finals = append(finals, st)
		}
	}

	return domain.NewAutomaton(b.order, b.alphabet, transitions, b.start, finals)
}

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	id      domain.State
	builder *AutomatonBuilder
	final   bool
	moves   []move
}

type move struct {
	symbol domain.Symbol
	to     []domain.State
}

// Start marks the state as the start state, replacing any previous choice.
func (s *StateBuilder) Start() *StateBuilder {
	s.builder.start = s.id
	s.builder.hasStart = true
	return s
}

// Final marks the state as accepting.
func (s *StateBuilder) Final() *StateBuilder {
	s.final = true
	return s
}

// On adds the move (state, symbol) -> to. Repeated calls for the same symbol
// accumulate destinations, which is how nondeterminism is expressed.
func (s *StateBuilder) On(symbol string, to ...string) *StateBuilder {
	m := move{symbol: domain.Symbol(symbol)}
	for _, t := range to {
		m.to = append(m.to, domain.State(t))
	}
	s.moves = append(s.moves, m)
	return s
}

// ID returns the state identifier.
func (s *StateBuilder) ID() domain.State {
	return s.id
}
