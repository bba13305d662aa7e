package clifford

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/aretw0/clifford/pkg/circuit"
	"github.com/aretw0/clifford/pkg/domain"
	"github.com/aretw0/clifford/pkg/entropy"
	"github.com/aretw0/clifford/pkg/pauli"
	"github.com/aretw0/clifford/pkg/ports"
	"github.com/aretw0/clifford/pkg/sweep"
	"github.com/aretw0/clifford/pkg/tableau"
	"github.com/google/uuid"
)

// ErrPairShape is returned by SweepPair for operators of different or zero length.
var ErrPairShape = errors.New("operators must have the same non-zero length")

// Sampler is the high-level entry point of the library.
// It is safe for concurrent use; draws from the random source are serialized.
type Sampler struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
	store  ports.RunStore
	seed   string

	mu  sync.Mutex
	rng *pauli.RNG

	source rand.Source
	now    func() time.Time
	newID  func() string
}

// Option defines a functional option for configuring the Sampler.
type Option func(*Sampler)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sampler) {
		s.logger = logger
	}
}

// WithSource sets the random source. label is recorded on sampled runs.
func WithSource(src rand.Source, label string) Option {
	return func(s *Sampler) {
		s.source = src
		s.seed = label
	}
}

// WithSeed uses a deterministic source derived from seed.
func WithSeed(seed uint64) Option {
	return WithSource(entropy.FromSeed(seed), fmt.Sprintf("%d", seed))
}

// WithHooks registers observability hooks.
// Calling it more than once merges the hooks in order.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Sampler) {
		s.hooks = s.hooks.Merge(hooks)
	}
}

// WithStore persists every finished run.
func WithStore(store ports.RunStore) Option {
	return func(s *Sampler) {
		s.store = store
	}
}

// New creates a Sampler. Without WithSource or WithSeed it draws from
// entropy.System.
func New(opts ...Option) *Sampler {
	s := &Sampler{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.source == nil {
		s.source = entropy.System()
		s.seed = "system"
	}
	s.rng = pauli.NewRNG(s.source)
	return s
}

// Store returns the configured run store, or nil.
func (s *Sampler) Store() ports.RunStore {
	return s.store
}

// Sample draws a random n-qubit tableau and reduces it to a circuit.
func (s *Sampler) Sample(ctx context.Context, n int) (*domain.Run, error) {
	s.mu.Lock()
	tb, err := tableau.Sample(s.rng, n)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return s.reduce(ctx, domain.KindSample, s.seed, tb)
}

// Canonicalize reduces caller-supplied rows, given in textual form such as
// "+XYZ". See tableau.New for the accepted shapes.
func (s *Sampler) Canonicalize(ctx context.Context, rows []string) (*domain.Run, error) {
	ops, err := pauli.ParseAll(rows)
	if err != nil {
		return nil, err
	}
	tb, err := tableau.New(ops)
	if err != nil {
		return nil, err
	}
	return s.reduce(ctx, domain.KindCanonicalize, "", tb)
}

// Figure5 reduces the worked example from the paper.
func (s *Sampler) Figure5(ctx context.Context) (*domain.Run, error) {
	return s.reduce(ctx, domain.KindFigure5, "", tableau.Figure5())
}

// SweepPair runs a single sweep over the anticommuting pair (a, b) and
// records where the operators end up. Signs are left as the sweep leaves them.
func (s *Sampler) SweepPair(ctx context.Context, a, b string) (*domain.Run, error) {
	ops, err := pauli.ParseAll([]string{a, b})
	if err != nil {
		return nil, err
	}
	pa, pb := ops[0], ops[1]
	if pa.Len() != pb.Len() || pa.Len() == 0 {
		return nil, fmt.Errorf("%w: got %d and %d", ErrPairShape, pa.Len(), pb.Len())
	}
	if pa.Commutes(pb) {
		return nil, fmt.Errorf("%w: %s, %s", tableau.ErrCommutingPair, pa, pb)
	}

	run := s.newRun(domain.KindSweep, "", pa.Len(), []string{a, b})
	start := s.now()
	s.fireStart(ctx, run)

	c := sweep.Sweep(&pa, &pb)
	run.Circuit = c
	run.Final = []string{pa.String(), pb.String()}
	run.Rounds = []tableau.Round{{Qubit: 0, Start: 0, End: c.Len()}}
	s.fireRound(ctx, run.ID, run.Rounds[0], c)

	return s.finish(ctx, run, start, nil)
}

func (s *Sampler) reduce(ctx context.Context, kind domain.RunKind, seed string, tb *tableau.Tableau) (*domain.Run, error) {
	rows := tb.Rows()
	text := make([]string, len(rows))
	for i, r := range rows {
		text[i] = r.String()
	}

	run := s.newRun(kind, seed, tb.Qubits(), text)
	start := s.now()
	s.fireStart(ctx, run)

	c, err := tb.Reduce(ctx, func(ctx context.Context, r tableau.Round, gates circuit.Circuit) {
		s.fireRound(ctx, run.ID, r, gates)
	})
	if err != nil {
		return s.finish(ctx, run, start, err)
	}

	run.Circuit = c
	run.Rounds = tb.Rounds()
	return s.finish(ctx, run, start, nil)
}

func (s *Sampler) newRun(kind domain.RunKind, seed string, qubits int, rows []string) *domain.Run {
	return &domain.Run{
		ID:        s.newID(),
		Kind:      kind,
		Qubits:    qubits,
		Seed:      seed,
		Rows:      rows,
		CreatedAt: s.now().UTC(),
	}
}

func (s *Sampler) fireStart(ctx context.Context, run *domain.Run) {
	s.logger.Debug("run started", "run_id", run.ID, "kind", run.Kind, "qubits", run.Qubits)
	if s.hooks.OnRunStart != nil {
		s.hooks.OnRunStart(ctx, &domain.RunEvent{
			EventBase: domain.EventBase{Timestamp: s.now(), Type: domain.EventRunStart, RunID: run.ID},
			Kind:      run.Kind,
			Qubits:    run.Qubits,
		})
	}
}

func (s *Sampler) fireRound(ctx context.Context, runID string, r tableau.Round, gates circuit.Circuit) {
	s.logger.Debug("round complete", "run_id", runID, "qubit", r.Qubit, "gates", gates.Len(), "rejections", r.Rejections)
	if s.hooks.OnRound != nil {
		s.hooks.OnRound(ctx, &domain.RoundEvent{
			EventBase:  domain.EventBase{Timestamp: s.now(), Type: domain.EventRound, RunID: runID},
			Qubit:      r.Qubit,
			Rejections: r.Rejections,
			Gates:      gates,
		})
	}
}

// finish persists a successful run and reports completion either way.
func (s *Sampler) finish(ctx context.Context, run *domain.Run, start time.Time, err error) (*domain.Run, error) {
	if err == nil && s.store != nil {
		if saveErr := s.store.Save(ctx, run); saveErr != nil {
			err = fmt.Errorf("failed to save run %s: %w", run.ID, saveErr)
		}
	}

	event := &domain.RunEvent{
		EventBase: domain.EventBase{Timestamp: s.now(), Type: domain.EventRunComplete, RunID: run.ID},
		Kind:      run.Kind,
		Qubits:    run.Qubits,
		Gates:     run.Circuit.Len(),
		Duration:  s.now().Sub(start),
		Err:       err,
	}
	if s.hooks.OnRunComplete != nil {
		s.hooks.OnRunComplete(ctx, event)
	}

	if err != nil {
		s.logger.Error("run failed", "run_id", run.ID, "kind", run.Kind, "error", err)
		return nil, err
	}
	s.logger.Info("run complete", "run_id", run.ID, "kind", run.Kind, "qubits", run.Qubits, "gates", run.Circuit.Len())
	return run, nil
}
