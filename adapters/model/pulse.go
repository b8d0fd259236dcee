package model

import (
	"math"

	"snplot/domain/photometry"
	"snplot/ports"
)

// Pulse is an analytic rise/decay light-curve model: an exponential rise to a
// peak at the reference time followed by an exponential decay, with a
// Gaussian wavelength sensitivity. It stands in for a fitted supernova model
// in demos and tests. Fluxes are defined natively at zeropoint 25 in the AB
// system and rescaled on request.
type Pulse struct {
	T0          float64 // reference time (peak)
	Amplitude   float64 // peak flux at the sensitivity peak, zp=25 AB
	RiseTime    float64 // e-folding time before peak, days
	FallTime    float64 // e-folding time after peak, days
	PeakWave    float64 // wavelength of maximum sensitivity, Angstroms
	WaveSigma   float64 // sensitivity width, Angstroms
	MinWave     float64 // valid wavelength range
	MaxWave     float64
	FluxErrFrac float64 // fractional model flux uncertainty; 0 means none

	Bandpasses ports.BandpassRegistry
	Systems    ports.MagSystemRegistry
}

var _ ports.LightCurveModel = (*Pulse)(nil)

// RefTime returns the peak time.
func (p *Pulse) RefTime() float64 { return p.T0 }

// TimeGrid returns the native evaluation times, one-day steps from 20 days
// before peak to 60 days after.
func (p *Pulse) TimeGrid() []float64 {
	grid := make([]float64, 0, 81)
	for t := p.T0 - 20; t <= p.T0+60; t++ {
		grid = append(grid, t)
	}
	return grid
}

// BandOverlap reports whether the band's effective wavelength lies inside the
// model's valid range. Unknown bands do not overlap.
func (p *Pulse) BandOverlap(band photometry.BandKey) bool {
	wave, err := p.Bandpasses.EffectiveWavelength(band)
	if err != nil {
		return false
	}
	return wave >= p.MinWave && wave <= p.MaxWave
}

// BandFlux evaluates the model over its native time grid.
func (p *Pulse) BandFlux(band photometry.BandKey, zp float64, sys photometry.SysKey) ([]float64, []float64, error) {
	flux, err := p.BandFluxAt(band, p.TimeGrid(), zp, sys)
	if err != nil {
		return nil, nil, err
	}
	if p.FluxErrFrac <= 0 {
		return flux, nil, nil
	}
	fluxerr := make([]float64, len(flux))
	for i, f := range flux {
		fluxerr[i] = p.FluxErrFrac * math.Abs(f)
	}
	return flux, fluxerr, nil
}

// BandFluxAt evaluates the model at arbitrary times.
func (p *Pulse) BandFluxAt(band photometry.BandKey, times []float64, zp float64, sys photometry.SysKey) ([]float64, error) {
	wave, err := p.Bandpasses.EffectiveWavelength(band)
	if err != nil {
		return nil, err
	}

	// Rescale from the native zp=25 AB definition to the requested system.
	abRef, err := p.Systems.ReferenceFlux(photometry.AB, band)
	if err != nil {
		return nil, err
	}
	sysRef, err := p.Systems.ReferenceFlux(sys, band)
	if err != nil {
		return nil, err
	}
	scale := abRef / sysRef * math.Pow(10, 0.4*(zp-photometry.DefaultZP))

	dw := (wave - p.PeakWave) / p.WaveSigma
	sensitivity := math.Exp(-0.5 * dw * dw)

	flux := make([]float64, len(times))
	for i, t := range times {
		dt := t - p.T0
		var profile float64
		if dt < 0 {
			profile = math.Exp(dt / p.RiseTime)
		} else {
			profile = math.Exp(-dt / p.FallTime)
		}
		flux[i] = p.Amplitude * sensitivity * profile * scale
	}
	return flux, nil
}
