package model

import (
	"math"
	"testing"

	"snplot/adapters/registry"
)

func testPulse() *Pulse {
	reg := registry.NewBuiltin()
	return &Pulse{
		T0:          55100,
		Amplitude:   1.0,
		RiseTime:    5,
		FallTime:    20,
		PeakWave:    5500,
		WaveSigma:   2500,
		MinWave:     3000,
		MaxWave:     8800,
		FluxErrFrac: 0.05,
		Bandpasses:  reg,
		Systems:     reg,
	}
}

func TestPulse_PeaksAtRefTime(t *testing.T) {
	p := testPulse()

	flux, err := p.BandFluxAt("sdssg", []float64{55080, 55100, 55140}, 25, "ab")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flux[1] <= flux[0] || flux[1] <= flux[2] {
		t.Errorf("flux %v does not peak at t0", flux)
	}
}

func TestPulse_BandOverlap(t *testing.T) {
	p := testPulse()

	if !p.BandOverlap("sdssg") {
		t.Error("sdssg (4686 A) should overlap [3000, 8800]")
	}
	if p.BandOverlap("sdssz") {
		t.Error("sdssz (8932 A) should fall outside [3000, 8800]")
	}
}

func TestPulse_BandOverlapNarrowRange(t *testing.T) {
	p := testPulse()
	p.MaxWave = 8000

	if p.BandOverlap("sdssz") {
		t.Error("sdssz (8932 A) should not overlap [3000, 8000]")
	}
	if p.BandOverlap("nosuchband") {
		t.Error("unknown bands never overlap")
	}
}

func TestPulse_ZeropointScaling(t *testing.T) {
	p := testPulse()
	times := []float64{55100}

	at25, err := p.BandFluxAt("sdssr", times, 25, "ab")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	at30, err := p.BandFluxAt("sdssr", times, 30, "ab")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// zp 30 is 5 magnitudes brighter in flux units: factor 100.
	want := at25[0] * 100
	if math.Abs(at30[0]-want) > 1e-9*want {
		t.Errorf("flux at zp=30 is %v, want %v", at30[0], want)
	}
}

func TestPulse_BandFluxCarriesError(t *testing.T) {
	p := testPulse()

	flux, fluxerr, err := p.BandFlux("sdssg", 25, "ab")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(flux) != len(p.TimeGrid()) {
		t.Fatalf("flux has %d points, want %d", len(flux), len(p.TimeGrid()))
	}
	if len(fluxerr) != len(flux) {
		t.Fatalf("fluxerr has %d points, want %d", len(fluxerr), len(flux))
	}
	for i := range flux {
		want := 0.05 * math.Abs(flux[i])
		if math.Abs(fluxerr[i]-want) > 1e-12 {
			t.Fatalf("fluxerr[%d] = %v, want %v", i, fluxerr[i], want)
		}
	}

	p.FluxErrFrac = 0
	_, fluxerr, err = p.BandFlux("sdssg", 25, "ab")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fluxerr != nil {
		t.Error("model without uncertainty should return nil errors")
	}
}

func TestPulse_UnknownBand(t *testing.T) {
	p := testPulse()
	if _, err := p.BandFluxAt("nosuchband", []float64{55100}, 25, "ab"); err == nil {
		t.Fatal("expected error for unknown band")
	}
}
