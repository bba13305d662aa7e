package clifford_test

import (
	"context"
	"testing"

	"github.com/aretw0/clifford"
	"github.com/aretw0/clifford/pkg/adapters/memory"
	"github.com/aretw0/clifford/pkg/circuit"
	"github.com/aretw0/clifford/pkg/domain"
	"github.com/aretw0/clifford/pkg/pauli"
	"github.com/aretw0/clifford/pkg/tableau"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampler_SampleDeterministic(t *testing.T) {
	ctx := context.Background()
	first, err := clifford.New(clifford.WithSeed(11)).Sample(ctx, 5)
	require.NoError(t, err)
	second, err := clifford.New(clifford.WithSeed(11)).Sample(ctx, 5)
	require.NoError(t, err)

	assert.Equal(t, first.Rows, second.Rows)
	assert.Equal(t, first.Circuit, second.Circuit)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "11", first.Seed)
	assert.Equal(t, domain.KindSample, first.Kind)
	assert.Len(t, first.Rows, 10)
	assert.Len(t, first.Rounds, 5)
}

func TestSampler_SampleInvalid(t *testing.T) {
	_, err := clifford.New(clifford.WithSeed(1)).Sample(context.Background(), 0)
	assert.ErrorIs(t, err, tableau.ErrQubits)
}

func TestSampler_Figure5(t *testing.T) {
	run, err := clifford.New().Figure5(context.Background())
	require.NoError(t, err)

	assert.Equal(t, tableau.Figure5Rows, run.Rows)
	assert.Equal(t, 4, run.Qubits)
	assert.Len(t, run.Rounds, 4)
	assert.Equal(t, run.Circuit.Len(), run.Rounds[3].End)
}

func TestSampler_Canonicalize(t *testing.T) {
	ctx := context.Background()
	s := clifford.New()

	run, err := s.Canonicalize(ctx, []string{"+YZ", "-XI", "+Y", "+X"})
	require.NoError(t, err)
	assert.Equal(t, domain.KindCanonicalize, run.Kind)

	// Replaying the circuit maps the first pair onto +X, +Z of qubit 0.
	a, b := pauli.MustParse("+YZ"), pauli.MustParse("-XI")
	run.Circuit.ApplyTo(&a, &b)
	assert.Equal(t, "+XI", a.String())
	assert.Equal(t, "+ZI", b.String())

	_, err = s.Canonicalize(ctx, []string{"+XQ", "+ZI"})
	assert.ErrorIs(t, err, pauli.ErrInvalidPauli)

	_, err = s.Canonicalize(ctx, []string{"+XX", "+ZZ"})
	assert.ErrorIs(t, err, tableau.ErrCommutingPair)
}

func TestSampler_SweepPair(t *testing.T) {
	ctx := context.Background()
	s := clifford.New()

	run, err := s.SweepPair(ctx, "+XXX", "+ZII")
	require.NoError(t, err)
	assert.Equal(t, []circuit.Gate{circuit.CX(0, 1), circuit.CX(0, 2)}, run.Circuit.Gates)
	assert.Equal(t, []string{"+XII", "+ZII"}, run.Final)

	_, err = s.SweepPair(ctx, "+XX", "+Z")
	assert.ErrorIs(t, err, clifford.ErrPairShape)

	_, err = s.SweepPair(ctx, "+XI", "+IZ")
	assert.ErrorIs(t, err, tableau.ErrCommutingPair)
}

func TestSampler_StoreAndHooks(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	var starts, rounds, completes int
	hooks := domain.LifecycleHooks{
		OnRunStart:    func(context.Context, *domain.RunEvent) { starts++ },
		OnRound:       func(context.Context, *domain.RoundEvent) { rounds++ },
		OnRunComplete: func(_ context.Context, e *domain.RunEvent) { completes++; assert.NoError(t, e.Err) },
	}

	s := clifford.New(clifford.WithSeed(3), clifford.WithStore(store), clifford.WithHooks(hooks))
	run, err := s.Sample(ctx, 3)
	require.NoError(t, err)

	assert.Equal(t, 1, starts)
	assert.Equal(t, 3, rounds)
	assert.Equal(t, 1, completes)

	loaded, err := store.Load(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.Circuit, loaded.Circuit)
	assert.Same(t, store, s.Store())
}

func TestSampler_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := memory.NewStore()
	var failed error
	s := clifford.New(clifford.WithStore(store), clifford.WithHooks(domain.LifecycleHooks{
		OnRunComplete: func(_ context.Context, e *domain.RunEvent) { failed = e.Err },
	}))

	_, err := s.Figure5(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, failed, context.Canceled)

	ids, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}
