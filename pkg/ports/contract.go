package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/clifford/pkg/circuit"
	"github.com/aretw0/clifford/pkg/domain"
	"github.com/aretw0/clifford/pkg/tableau"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// VerifyRunStore runs a suite of tests to verify that a RunStore implementation
// adheres to the defined interface contract.
func VerifyRunStore(t *testing.T, store RunStore) {
	ctx := context.Background()
	runID := "contract-test-run-" + time.Now().Format("20060102150405")

	newRun := func(id string) *domain.Run {
		return &domain.Run{
			ID:     id,
			Kind:   domain.KindFigure5,
			Qubits: 2,
			Rows:   []string{"+XZ", "+ZI", "+X", "+Z"},
			Circuit: circuit.Circuit{Gates: []circuit.Gate{
				circuit.H(0), circuit.CX(0, 1), circuit.SWAP(0, 1),
			}},
			Rounds:    []tableau.Round{{Qubit: 0, Start: 0, End: 3}},
			CreatedAt: time.Now().UTC().Truncate(time.Second),
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		run := newRun(runID)

		err := store.Save(ctx, run)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, run.Kind, loaded.Kind)
		assert.Equal(t, run.Qubits, loaded.Qubits)
		assert.Equal(t, run.Rows, loaded.Rows)
		assert.Equal(t, run.Circuit.Gates, loaded.Circuit.Gates)
		assert.Equal(t, run.Rounds, loaded.Rounds)
		assert.True(t, run.CreatedAt.Equal(loaded.CreatedAt))
	})

	t.Run("Load Is Isolated", func(t *testing.T) {
		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err)
		loaded.Rows[0] = "-YY"

		again, err := store.Load(ctx, runID)
		require.NoError(t, err)
		assert.Equal(t, "+XZ", again.Rows[0], "mutating a loaded run must not change the store")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound)
	})

	t.Run("Save Without ID", func(t *testing.T) {
		err := store.Save(ctx, newRun(""))
		assert.ErrorIs(t, err, domain.ErrEmptyRunID)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, newRun(runID))
		require.NoError(t, err)

		err = store.Delete(ctx, runID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound, "Load after Delete should return ErrRunNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := runID + "-1"
		id2 := runID + "-2"
		_ = store.Save(ctx, newRun(id1))
		_ = store.Save(ctx, newRun(id2))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		runs, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, runs, id1)
		assert.Contains(t, runs, id2)
	})
}
