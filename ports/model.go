package ports

import "snplot/domain/photometry"

// LightCurveModel is a fitted light-curve model that can be overplotted on
// observed data. Implementations are read-only collaborators; nothing here
// mutates them.
type LightCurveModel interface {
	// RefTime returns the model's reference time (t0). Plots shift the time
	// axis so this aligns to zero.
	RefTime() float64

	// TimeGrid returns the model's native evaluation times.
	TimeGrid() []float64

	// BandOverlap reports whether the band's wavelength coverage falls inside
	// the model's valid wavelength range.
	BandOverlap(band photometry.BandKey) bool

	// BandFlux evaluates model flux over the native time grid in the given
	// band, scaled to the given zeropoint and system. The returned error
	// slice is nil when the model carries no flux uncertainty.
	BandFlux(band photometry.BandKey, zp float64, sys photometry.SysKey) (flux, fluxerr []float64, err error)

	// BandFluxAt evaluates model flux at arbitrary times.
	BandFluxAt(band photometry.BandKey, times []float64, zp float64, sys photometry.SysKey) ([]float64, error)
}
