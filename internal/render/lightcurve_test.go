package render

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"snplot/adapters/registry"
	"snplot/domain/core"
	"snplot/domain/photometry"
	"snplot/internal/testkit"
)

func testRenderer() (*Renderer, *registry.Builtin) {
	reg := registry.NewBuiltin()
	return NewRenderer(reg, reg), reg
}

func demoBatch(bands []photometry.BandKey) *photometry.Batch {
	reg := testkit.DemoRegistry()
	gen := testkit.NewGenerator(42)
	return gen.Batch(testkit.DemoModel(reg, 55100), bands, 20, 0.1)
}

func TestBuildLightCurvePanels_SortedByWavelength(t *testing.T) {
	r, _ := testRenderer()
	// Deliberately unsorted input order.
	batch := demoBatch([]photometry.BandKey{"sdssz", "sdssg", "sdssr"})

	panels, err := r.buildLightCurvePanels(batch, LightCurveOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(panels) != 3 {
		t.Fatalf("got %d panels, want 3", len(panels))
	}

	want := []photometry.BandKey{"sdssg", "sdssr", "sdssz"}
	for i, panel := range panels {
		if panel.Band != want[i] {
			t.Errorf("panel %d is %s, want %s", i, panel.Band, want[i])
		}
		if i > 0 && panels[i].WaveEff < panels[i-1].WaveEff {
			t.Errorf("panel %d wavelength %v out of order", i, panel.WaveEff)
		}
	}
}

func TestBuildLightCurvePanels_OnePanelPerBandNoModel(t *testing.T) {
	r, _ := testRenderer()
	batch := demoBatch([]photometry.BandKey{"sdssg", "sdssr"})

	panels, err := r.buildLightCurvePanels(batch, LightCurveOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, panel := range panels {
		if panel.HasModel {
			t.Errorf("band %s has a model overlay without a model", panel.Band)
		}
		if panel.Pulls != nil {
			t.Errorf("band %s has pulls without a model", panel.Band)
		}
		if want := batch.RowsFor(panel.Band); len(panel.Time) != len(want) {
			t.Errorf("band %s has %d points, want %d", panel.Band, len(panel.Time), len(want))
		}
	}
}

func TestBuildLightCurvePanels_ModelOverlapAndPulls(t *testing.T) {
	r, reg := testRenderer()
	batch := demoBatch([]photometry.BandKey{"sdssg", "sdssz"})

	m := testkit.DemoModel(reg, 55100)
	m.MaxWave = 8000 // sdssz (8932 A) now falls outside the model

	panels, err := r.buildLightCurvePanels(batch, LightCurveOptions{
		Model:     m,
		ShowPulls: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byBand := map[photometry.BandKey]bandPanel{}
	for _, p := range panels {
		byBand[p.Band] = p
	}

	g := byBand["sdssg"]
	if !g.HasModel {
		t.Error("sdssg should have a model overlay")
	}
	if len(g.Pulls) != len(g.Time) {
		t.Errorf("sdssg has %d pulls for %d points", len(g.Pulls), len(g.Time))
	}
	if len(g.ModelTime) != len(m.TimeGrid()) {
		t.Errorf("sdssg model curve has %d points, want %d", len(g.ModelTime), len(m.TimeGrid()))
	}

	z := byBand["sdssz"]
	if z.HasModel {
		t.Error("sdssz overlaps nothing and should have data only")
	}
	if len(z.Time) == 0 {
		t.Error("sdssz data must still be drawn without a model overlay")
	}

	// With a model, the time axis is shifted to the reference time.
	for _, tt := range g.Time {
		if tt < -100 || tt > 100 {
			t.Fatalf("time %v does not look t0-shifted", tt)
		}
	}
}

func TestBuildLightCurvePanels_UnknownBand(t *testing.T) {
	r, _ := testRenderer()
	batch := demoBatch([]photometry.BandKey{"sdssg"})
	batch.Band[0] = "notaband"

	_, err := r.buildLightCurvePanels(batch, LightCurveOptions{})
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestPlotLightCurve_WritesFigure(t *testing.T) {
	r, reg := testRenderer()
	batch := demoBatch(testkit.DemoBands()) // exactly 4 bands, 2x2 grid

	path := filepath.Join(t.TempDir(), "lc.png")
	written, err := r.PlotLightCurve(batch, LightCurveOptions{
		Path:              path,
		Model:             testkit.DemoModel(reg, 55100),
		ShowPulls:         true,
		IncludeModelError: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if written != path {
		t.Errorf("written to %s, want %s", written, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("figure not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("figure file is empty")
	}
}

func TestPlotLightCurve_MoreThanFourBands(t *testing.T) {
	r, _ := testRenderer()
	bands := append(testkit.DemoBands(), "bessellv")
	batch := demoBatch(bands)

	path := filepath.Join(t.TempDir(), "lc5.png")
	if _, err := r.PlotLightCurve(batch, LightCurveOptions{Path: path}); err != nil {
		t.Fatalf("five bands should render on a computed grid: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("figure not written: %v", err)
	}
}

func TestDrawBandPanel_ClampsFluxRangeToModelPeak(t *testing.T) {
	// One observation far above the model peak and one far below zero: the
	// final axis range, padding included, must stay inside [-0.2, 2] x peak.
	panel := bandPanel{
		Band:      "sdssg",
		WaveEff:   4686,
		Color:     bandColor(4686),
		Time:      []float64{-5, 0, 5},
		Flux:      []float64{0.5, 50, -3},
		FluxErr:   []float64{0.1, 0.1, 0.1},
		HasModel:  true,
		ModelTime: []float64{-10, 0, 10},
		ModelFlux: []float64{0.3, 1.0, 0.4},
	}

	p, _, err := drawBandPanel(panel, true, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const peak = 1.0
	if p.Y.Max > 2*peak+1e-9 {
		t.Errorf("Y.Max = %v exceeds 2*peak = %v", p.Y.Max, 2*peak)
	}
	if p.Y.Min < -0.2*peak-1e-9 {
		t.Errorf("Y.Min = %v below -0.2*peak = %v", p.Y.Min, -0.2*peak)
	}
}

func TestBandColor_ClampsOutsideDisplayRange(t *testing.T) {
	if bandColor(2000) != bandColor(dispMin) {
		t.Error("wavelengths below the display range should saturate")
	}
	if bandColor(12000) != bandColor(dispMax) {
		t.Error("wavelengths above the display range should saturate")
	}
	if bandColor(4686) == bandColor(8932) {
		t.Error("distinct in-range wavelengths should map to distinct colors")
	}
}
