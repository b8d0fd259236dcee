package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"snplot/domain/core"
	"snplot/domain/photometry"
	"snplot/ports"
)

// observationRepository implements ports.ObservationRepository over an
// observations table:
//
//	CREATE TABLE observations (
//	    batch_name TEXT NOT NULL,
//	    obs_time   DOUBLE PRECISION NOT NULL,
//	    band       TEXT NOT NULL,
//	    flux       DOUBLE PRECISION NOT NULL,
//	    fluxerr    DOUBLE PRECISION NOT NULL,
//	    zp         DOUBLE PRECISION NOT NULL,
//	    zpsys      TEXT NOT NULL
//	);
type observationRepository struct {
	db *sqlx.DB
}

// NewObservationRepository creates a new observation repository
func NewObservationRepository(db *sqlx.DB) ports.ObservationRepository {
	return &observationRepository{db: db}
}

// GetBatch returns all observations recorded under the named batch.
func (r *observationRepository) GetBatch(ctx context.Context, id core.BatchID) (*photometry.Batch, error) {
	query := `SELECT obs_time, band, flux, fluxerr, zp, zpsys
		FROM observations WHERE batch_name = $1 ORDER BY obs_time`

	rows, err := r.db.QueryContext(ctx, query, id.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query batch %q: %w", id, err)
	}
	defer rows.Close()

	batch := &photometry.Batch{}
	for rows.Next() {
		var (
			t, flux, fluxerr, zp float64
			band, sys            string
		)
		if err := rows.Scan(&t, &band, &flux, &fluxerr, &zp, &sys); err != nil {
			return nil, fmt.Errorf("failed to scan observation: %w", err)
		}

		bandKey, err := photometry.ParseBandKey(band)
		if err != nil {
			return nil, err
		}
		sysKey, err := photometry.ParseSysKey(sys)
		if err != nil {
			return nil, err
		}

		batch.Time = append(batch.Time, t)
		batch.Band = append(batch.Band, bandKey)
		batch.Flux = append(batch.Flux, flux)
		batch.FluxErr = append(batch.FluxErr, fluxerr)
		batch.ZP = append(batch.ZP, zp)
		batch.ZPSys = append(batch.ZPSys, sysKey)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read observations: %w", err)
	}

	if batch.Len() == 0 {
		return nil, fmt.Errorf("%w: batch %q", core.ErrBatchNotFound, id)
	}
	return batch, nil
}

// ListBatches returns the known batch names.
func (r *observationRepository) ListBatches(ctx context.Context) ([]core.BatchID, error) {
	query := `SELECT DISTINCT batch_name FROM observations ORDER BY batch_name`

	var ids []core.BatchID
	if err := r.db.SelectContext(ctx, &ids, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}
	return ids, nil
}
