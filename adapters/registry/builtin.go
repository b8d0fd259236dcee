package registry

import (
	"math"

	"snplot/domain/core"
	"snplot/domain/photometry"
	"snplot/ports"
)

// bandInfo carries the built-in per-band constants: effective wavelength in
// Angstroms, the AB reference flux, and the Vega-AB magnitude offset used to
// derive the Vega reference flux.
type bandInfo struct {
	waveEff    float64
	abFlux     float64
	vegaOffset float64
}

// Approximate effective wavelengths and Vega-AB offsets for the SDSS and
// Bessell filter sets. Reference fluxes are counts for a zeropoint-magnitude
// source; only their ratios matter for normalization.
var builtinBands = map[photometry.BandKey]bandInfo{
	"sdssu": {waveEff: 3551, abFlux: 1.32e10, vegaOffset: 0.91},
	"sdssg": {waveEff: 4686, abFlux: 4.09e10, vegaOffset: -0.08},
	"sdssr": {waveEff: 6166, abFlux: 2.86e10, vegaOffset: 0.16},
	"sdssi": {waveEff: 7480, abFlux: 2.24e10, vegaOffset: 0.37},
	"sdssz": {waveEff: 8932, abFlux: 1.28e10, vegaOffset: 0.54},

	"bessellu": {waveEff: 3663, abFlux: 1.41e10, vegaOffset: 0.79},
	"bessellb": {waveEff: 4380, abFlux: 3.80e10, vegaOffset: -0.09},
	"bessellv": {waveEff: 5450, abFlux: 3.58e10, vegaOffset: 0.02},
	"bessellr": {waveEff: 6410, abFlux: 3.06e10, vegaOffset: 0.21},
	"besselli": {waveEff: 7980, abFlux: 2.29e10, vegaOffset: 0.45},
}

// Builtin is an in-memory bandpass and magnitude-system registry preloaded
// with the SDSS ugriz and Bessell UBVRI bands and the "ab" and "vega"
// systems. It implements both ports.BandpassRegistry and
// ports.MagSystemRegistry.
type Builtin struct {
	bands map[photometry.BandKey]bandInfo
}

var (
	_ ports.BandpassRegistry  = (*Builtin)(nil)
	_ ports.MagSystemRegistry = (*Builtin)(nil)
)

// NewBuiltin creates a registry with the built-in band tables.
func NewBuiltin() *Builtin {
	bands := make(map[photometry.BandKey]bandInfo, len(builtinBands))
	for k, v := range builtinBands {
		bands[k] = v
	}
	return &Builtin{bands: bands}
}

// RegisterBand adds or replaces a band. Reference fluxes follow the same
// convention as the built-in table.
func (r *Builtin) RegisterBand(band photometry.BandKey, waveEff, abFlux, vegaOffset float64) {
	r.bands[band] = bandInfo{waveEff: waveEff, abFlux: abFlux, vegaOffset: vegaOffset}
}

// EffectiveWavelength returns the band's effective wavelength in Angstroms.
func (r *Builtin) EffectiveWavelength(band photometry.BandKey) (float64, error) {
	info, ok := r.bands[band]
	if !ok {
		return 0, core.NewBandNotFoundError(band.String())
	}
	return info.waveEff, nil
}

// ReferenceFlux returns the flux of a zeropoint-magnitude source in the given
// band under the given system.
func (r *Builtin) ReferenceFlux(sys photometry.SysKey, band photometry.BandKey) (float64, error) {
	info, ok := r.bands[band]
	if !ok {
		return 0, core.NewBandNotFoundError(band.String())
	}
	switch sys {
	case photometry.AB:
		return info.abFlux, nil
	case "vega":
		return info.abFlux * math.Pow(10, 0.4*info.vegaOffset), nil
	default:
		return 0, core.NewMagSystemNotFoundError(sys.String())
	}
}
