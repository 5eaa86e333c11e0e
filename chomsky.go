package chomsky

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/aretw0/chomsky/pkg/adapters/memory"
	"github.com/aretw0/chomsky/pkg/automata"
	"github.com/aretw0/chomsky/pkg/domain"
	"github.com/aretw0/chomsky/pkg/grammar"
	"github.com/aretw0/chomsky/pkg/observability"
	"github.com/aretw0/chomsky/pkg/ports"
	"github.com/aretw0/chomsky/pkg/schema"
)

// DefaultStateLimit caps subset construction unless WithStateLimit says otherwise.
const DefaultStateLimit = 10000

// Toolkit is the high-level entry point of the library.
// It is safe for concurrent use as long as the injected store is.
type Toolkit struct {
	logger     *slog.Logger
	metrics    *observability.Metrics
	store      ports.DefinitionStore
	stateLimit int
	maxSteps   int
}

// Option defines a functional option for configuring the Toolkit.
type Option func(*Toolkit)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Toolkit) {
		t.logger = logger
	}
}

// WithMetrics records every operation on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(t *Toolkit) {
		t.metrics = m
	}
}

// WithStore sets the definition store (default: in memory).
func WithStore(store ports.DefinitionStore) Option {
	return func(t *Toolkit) {
		t.store = store
	}
}

// WithStateLimit bounds the number of DFA states Determinize may create.
// Zero or a negative value disables the limit.
func WithStateLimit(n int) Option {
	return func(t *Toolkit) {
		t.stateLimit = n
	}
}

// WithMaxSteps bounds each derivation performed by Generate.
func WithMaxSteps(n int) Option {
	return func(t *Toolkit) {
		t.maxSteps = n
	}
}

// New creates a Toolkit.
func New(opts ...Option) *Toolkit {
	t := &Toolkit{
		stateLimit: DefaultStateLimit,
		maxSteps:   grammar.DefaultMaxSteps,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if t.store == nil {
		t.store = memory.NewStore()
	}
	return t
}

// Logger returns the configured logger.
func (t *Toolkit) Logger() *slog.Logger {
	return t.logger
}

// Store returns the definition store.
func (t *Toolkit) Store() ports.DefinitionStore {
	return t.store
}

// DeterminismReport is the result of CheckDeterminism.
type DeterminismReport struct {
	Deterministic bool              `json:"deterministic"`
	Conflicts     []domain.Conflict `json:"conflicts"`
}

// CheckDeterminism reports whether a is deterministic and lists every
// (state, symbol) pair with more than one destination.
func (t *Toolkit) CheckDeterminism(ctx context.Context, a *domain.Automaton) DeterminismReport {
	var report DeterminismReport
	_ = t.observe(ctx, "check_determinism", func() error {
		report.Conflicts = automata.Conflicts(a)
		if report.Conflicts == nil {
			report.Conflicts = []domain.Conflict{}
		}
		report.Deterministic = len(report.Conflicts) == 0
		return nil
	}, "states", len(a.States()))
	return report
}

// Determinize returns an equivalent deterministic automaton.
// Already deterministic input is returned unchanged.
func (t *Toolkit) Determinize(ctx context.Context, a *domain.Automaton) (*domain.Automaton, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var dfa *domain.Automaton
	err := t.observe(ctx, "determinize", func() error {
		var err error
		dfa, err = automata.DeterminizeWithLimit(a, t.stateLimit)
		if err != nil {
			return err
		}
		t.metrics.ObserveDFA(len(dfa.States()))
		return nil
	}, "states", len(a.States()))
	if err != nil {
		return nil, err
	}
	t.logger.DebugContext(ctx, "automaton determinized", "dfa_states", len(dfa.States()), "dfa_transitions", dfa.TransitionCount())
	return dfa, nil
}

// ToGrammar derives the right-linear grammar of a.
func (t *Toolkit) ToGrammar(ctx context.Context, a *domain.Automaton) (*domain.Grammar, error) {
	var g *domain.Grammar
	err := t.observe(ctx, "automaton_to_grammar", func() error {
		var err error
		g, err = automata.ToGrammar(a)
		return err
	})
	return g, err
}

// ToAutomaton builds the nondeterministic automaton of a right-linear grammar.
func (t *Toolkit) ToAutomaton(ctx context.Context, g *domain.Grammar) (*domain.Automaton, error) {
	var a *domain.Automaton
	err := t.observe(ctx, "grammar_to_automaton", func() error {
		var err error
		a, err = grammar.ToAutomaton(g)
		return err
	}, "productions", len(g.Productions()))
	return a, err
}

// Classify analyzes g and returns the per-check detail with its type.
func (t *Toolkit) Classify(ctx context.Context, g *domain.Grammar) grammar.Analysis {
	var analysis grammar.Analysis
	_ = t.observe(ctx, "classify", func() error {
		analysis = grammar.Analyze(g)
		return nil
	}, "productions", len(g.Productions()))
	t.logger.DebugContext(ctx, "grammar classified", "type", analysis.Type().Short())
	return analysis
}

// AcceptResult pairs an input with its verdict.
type AcceptResult struct {
	Input    string `json:"input"`
	Accepted bool   `json:"accepted"`
}

// Accepts runs a on every input. Rejection is a result, not an error.
func (t *Toolkit) Accepts(ctx context.Context, a *domain.Automaton, inputs ...string) []AcceptResult {
	results := make([]AcceptResult, 0, len(inputs))
	_ = t.observe(ctx, "accepts", func() error {
		for _, in := range inputs {
			results = append(results, AcceptResult{Input: in, Accepted: automata.Accepts(a, in)})
		}
		return nil
	}, "inputs", len(inputs))
	return results
}

// Generate derives n random strings from g. The same seed yields the same strings.
func (t *Toolkit) Generate(ctx context.Context, g *domain.Grammar, n int, seed int64) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []string
	err := t.observe(ctx, "generate", func() error {
		gen := grammar.NewGenerator(g, rand.NewSource(seed))
		gen.MaxSteps = t.maxSteps
		var err error
		out, err = gen.GenerateN(n)
		return err
	}, "count", n, "seed", seed)
	return out, err
}

// Resolve loads a definition from a file when ref names one, and from the
// store otherwise.
func (t *Toolkit) Resolve(ctx context.Context, ref string) (*schema.Definition, error) {
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return schema.LoadFile(ref)
	}
	def, err := t.store.Load(ctx, ref)
	if err != nil {
		if errors.Is(err, domain.ErrDefinitionNotFound) {
			return nil, fmt.Errorf("%q is neither a file nor a stored definition: %w", ref, err)
		}
		return nil, err
	}
	return def, nil
}

// observe times fn, records it and logs the outcome.
func (t *Toolkit) observe(ctx context.Context, operation string, fn func() error, attrs ...any) error {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	t.metrics.Observe(operation, elapsed.Seconds(), err)

	attrs = append(attrs, "operation", operation, "duration", elapsed)
	if err != nil {
		t.logger.WarnContext(ctx, "operation failed", append(attrs, "error", err)...)
		return err
	}
	t.logger.DebugContext(ctx, "operation finished", attrs...)
	return nil
}

