package ports

import "snplot/domain/photometry"

// BatchReader loads an observation batch from some source (file, database).
type BatchReader interface {
	ReadBatch() (*photometry.Batch, error)
}
