package ports

import "snplot/domain/photometry"

// BandpassRegistry resolves band keys to bandpass properties. Lookups fail
// with a core.ErrNotFound-wrapped error for unknown keys.
type BandpassRegistry interface {
	// EffectiveWavelength returns the band's effective wavelength in Angstroms.
	EffectiveWavelength(band photometry.BandKey) (float64, error)
}

// MagSystemRegistry resolves magnitude-system keys to per-band reference
// fluxes. Lookups fail with a core.ErrNotFound-wrapped error for unknown
// system or band keys.
type MagSystemRegistry interface {
	// ReferenceFlux returns the flux of a zeropoint-magnitude source in the
	// given band under the given system.
	ReferenceFlux(sys photometry.SysKey, band photometry.BandKey) (float64, error)
}
