package photometry

import (
	"fmt"
	"math"
)

// RefFluxLookup resolves a (system, band) pair to the system's reference
// flux in that band. It mirrors ports.MagSystemRegistry without importing it,
// keeping the domain free of the ports package.
type RefFluxLookup interface {
	ReferenceFlux(sys SysKey, band BandKey) (float64, error)
}

// NormalizedFlux converts every row of the batch to the target zeropoint and
// magnitude system. Each row is scaled by
//
//	(native reference flux / target reference flux) * 10^(0.4*(targetZP - nativeZP))
//
// and the factor applies to both flux and flux error, so output slices have
// the same length and order as the batch. The batch itself is not modified.
func NormalizedFlux(batch *Batch, targetZP float64, targetSys SysKey, systems RefFluxLookup) (flux, fluxerr []float64, err error) {
	if err := batch.Validate(); err != nil {
		return nil, nil, err
	}

	n := batch.Len()
	flux = make([]float64, n)
	fluxerr = make([]float64, n)

	for i := 0; i < n; i++ {
		native, err := systems.ReferenceFlux(batch.ZPSys[i], batch.Band[i])
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", i, err)
		}
		target, err := systems.ReferenceFlux(targetSys, batch.Band[i])
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", i, err)
		}

		factor := native / target * math.Pow(10, 0.4*(targetZP-batch.ZP[i]))
		flux[i] = batch.Flux[i] * factor
		fluxerr[i] = batch.FluxErr[i] * factor
	}

	return flux, fluxerr, nil
}
