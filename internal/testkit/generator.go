package testkit

import (
	"math/rand"

	"snplot/adapters/model"
	"snplot/adapters/registry"
	"snplot/domain/photometry"
	"snplot/domain/posterior"
)

// Generator produces deterministic synthetic light-curve data and posterior
// samples for demos and tests.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator seeded for reproducible output.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// DemoRegistry returns the built-in band registry used by the demo fixtures.
func DemoRegistry() *registry.Builtin {
	return registry.NewBuiltin()
}

// DemoBands returns the SDSS bands used by the demo fixtures.
func DemoBands() []photometry.BandKey {
	return []photometry.BandKey{"sdssg", "sdssr", "sdssi", "sdssz"}
}

// DemoModel returns a pulse model peaking at t0 covering the SDSS bands.
func DemoModel(reg *registry.Builtin, t0 float64) *model.Pulse {
	return &model.Pulse{
		T0:          t0,
		Amplitude:   1.0,
		RiseTime:    5,
		FallTime:    20,
		PeakWave:    5500,
		WaveSigma:   2500,
		MinWave:     3000,
		MaxWave:     9500,
		FluxErrFrac: 0.05,
		Bandpasses:  reg,
		Systems:     reg,
	}
}

// Batch samples the model in the given bands at evenly spaced times with
// Gaussian noise, producing observations at zeropoint 25 in the AB system.
func (g *Generator) Batch(m *model.Pulse, bands []photometry.BandKey, perBand int, noiseFrac float64) *photometry.Batch {
	batch := &photometry.Batch{}
	grid := m.TimeGrid()
	t0, t1 := grid[0], grid[len(grid)-1]

	for _, band := range bands {
		times := make([]float64, perBand)
		step := 0.0
		if perBand > 1 {
			step = (t1 - t0) / float64(perBand-1)
		}
		for i := range times {
			times[i] = t0 + step*float64(i)
		}
		flux, err := m.BandFluxAt(band, times, photometry.DefaultZP, photometry.AB)
		if err != nil {
			// Unknown bands are a fixture bug, not a runtime condition.
			panic(err)
		}

		peak := 0.0
		for _, f := range flux {
			if f > peak {
				peak = f
			}
		}
		sigma := noiseFrac * peak

		for i, t := range times {
			batch.Time = append(batch.Time, t)
			batch.Band = append(batch.Band, band)
			batch.Flux = append(batch.Flux, flux[i]+g.rng.NormFloat64()*sigma)
			batch.FluxErr = append(batch.FluxErr, sigma)
			batch.ZP = append(batch.ZP, photometry.DefaultZP)
			batch.ZPSys = append(batch.ZPSys, photometry.AB)
		}
	}
	return batch
}

// Posterior draws weighted Gaussian samples around the given truth values.
func (g *Generator) Posterior(names []string, truth, spread []float64, nsamples int) *posterior.SampleSet {
	set := &posterior.SampleSet{
		Names:   names,
		Samples: make([][]float64, nsamples),
		Weights: make([]float64, nsamples),
	}
	for i := 0; i < nsamples; i++ {
		row := make([]float64, len(names))
		for j := range names {
			row[j] = truth[j] + g.rng.NormFloat64()*spread[j]
		}
		set.Samples[i] = row
		set.Weights[i] = 0.5 + g.rng.Float64()
	}
	return set
}
