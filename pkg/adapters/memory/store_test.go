package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/aretw0/clifford/pkg/adapters/memory"
	"github.com/aretw0/clifford/pkg/domain"
	"github.com/aretw0/clifford/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.RunStore = (*memory.Store)(nil)

func TestMemoryStore_Contract(t *testing.T) {
	ports.VerifyRunStore(t, memory.NewStore())
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			run := &domain.Run{ID: fmt.Sprintf("run-%02d", i), Kind: domain.KindSample, Qubits: i}
			assert.NoError(t, store.Save(ctx, run))
			_, err := store.Load(ctx, run.ID)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, 20)
	assert.Equal(t, "run-00", ids[0])
}
