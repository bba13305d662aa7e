package ports

import (
	"context"

	"github.com/aretw0/clifford/pkg/domain"
)

// RunStore defines the interface for persisting finished runs.
type RunStore interface {
	// Save persists the run under run.ID, replacing any previous value.
	Save(ctx context.Context, run *domain.Run) error

	// Load retrieves a run by ID.
	// Returns domain.ErrRunNotFound if the run does not exist.
	Load(ctx context.Context, id string) (*domain.Run, error)

	// Delete removes the run. Deleting a missing run is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of stored runs.
	List(ctx context.Context) ([]string, error)
}
