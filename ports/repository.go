package ports

import (
	"context"

	"snplot/domain/core"
	"snplot/domain/photometry"
)

// ObservationRepository loads stored observation batches by name.
type ObservationRepository interface {
	// GetBatch returns all observations recorded under the named batch,
	// or a core.ErrNotFound-wrapped error when the name is unknown.
	GetBatch(ctx context.Context, id core.BatchID) (*photometry.Batch, error)

	// ListBatches returns the known batch names.
	ListBatches(ctx context.Context) ([]core.BatchID, error)
}
