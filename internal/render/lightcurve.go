package render

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"snplot/domain/photometry"
	"snplot/ports"
)

// lightCurveCols fixes the light-curve grid at two columns; rows grow with
// the band count.
const lightCurveCols = 2

// pullPanelFrac is the tile height fraction given to the pull subpanel.
const pullPanelFrac = 0.28

// LightCurveOptions control a light-curve figure.
type LightCurveOptions struct {
	// Path is the output PNG path. Empty renders to a uuid-named file under
	// the OS temp dir.
	Path string
	// Model, when set, is overplotted on every band it overlaps.
	Model ports.LightCurveModel
	// ShowPulls appends a residual subpanel per band with a model overlay.
	ShowPulls bool
	// IncludeModelError shades the model curve by its flux uncertainty.
	IncludeModelError bool
	// DPI sets the raster resolution; 0 uses the canvas default.
	DPI int
}

// Renderer draws diagnostic figures. It holds the lookup collaborators and
// no drawing state; every call builds its own figure.
type Renderer struct {
	bandpasses ports.BandpassRegistry
	systems    ports.MagSystemRegistry
}

// NewRenderer creates a renderer over the given registries.
func NewRenderer(bandpasses ports.BandpassRegistry, systems ports.MagSystemRegistry) *Renderer {
	return &Renderer{bandpasses: bandpasses, systems: systems}
}

// bandPanel is the prepared content of one light-curve panel.
type bandPanel struct {
	Band    photometry.BandKey
	WaveEff float64
	Color   color.Color

	// Observations, flux normalized to zp=25 AB. Time is shifted by t0 when
	// a model is present.
	Time    []float64
	Flux    []float64
	FluxErr []float64

	// Model overlay over the model's native grid, already shifted by t0.
	// Empty when there is no model or the band does not overlap it.
	HasModel     bool
	ModelTime    []float64
	ModelFlux    []float64
	ModelFluxErr []float64

	// Pulls at the observation times, parallel to Time. Nil unless requested.
	Pulls []float64

	T0 float64
}

// PlotLightCurve renders one panel per band present in the batch, sorted by
// ascending effective wavelength, with error bars and optional model overlay
// and pull subpanels. It returns the path the figure was written to.
func (r *Renderer) PlotLightCurve(batch *photometry.Batch, opts LightCurveOptions) (string, error) {
	panels, err := r.buildLightCurvePanels(batch, opts)
	if err != nil {
		return "", err
	}

	rows := (len(panels)-1)/lightCurveCols + 1
	fig := NewFigure(8*vg.Inch, vg.Length(3*rows)*vg.Inch, rows, lightCurveCols, opts.DPI)

	for i, panel := range panels {
		row, col := i/lightCurveCols, i%lightCurveCols
		main, pull, err := drawBandPanel(panel, col == 0, opts.ShowPulls)
		if err != nil {
			return "", err
		}
		if pull != nil {
			fig.DrawSplitPlot(main, pull, row, col, pullPanelFrac)
		} else {
			fig.DrawPlot(main, row, col)
		}
	}

	path := resolveOutputPath(opts.Path)
	if err := fig.SavePNG(path); err != nil {
		return "", err
	}
	return path, nil
}

// buildLightCurvePanels normalizes the batch and prepares per-band panel
// content, sorted by ascending effective wavelength.
func (r *Renderer) buildLightCurvePanels(batch *photometry.Batch, opts LightCurveOptions) ([]bandPanel, error) {
	flux, fluxerr, err := photometry.NormalizedFlux(batch, photometry.DefaultZP, photometry.AB, r.systems)
	if err != nil {
		return nil, err
	}

	var t0 float64
	if opts.Model != nil {
		t0 = opts.Model.RefTime()
	}

	var panels []bandPanel
	for _, band := range batch.Bands() {
		wave, err := r.bandpasses.EffectiveWavelength(band)
		if err != nil {
			return nil, err
		}

		idx := batch.RowsFor(band)
		panel := bandPanel{
			Band:    band,
			WaveEff: wave,
			Color:   bandColor(wave),
			Time:    make([]float64, len(idx)),
			Flux:    make([]float64, len(idx)),
			FluxErr: make([]float64, len(idx)),
			T0:      t0,
		}
		for k, i := range idx {
			panel.Time[k] = batch.Time[i] - t0
			panel.Flux[k] = flux[i]
			panel.FluxErr[k] = fluxerr[i]
		}

		if opts.Model != nil && opts.Model.BandOverlap(band) {
			mflux, mfluxerr, err := opts.Model.BandFlux(band, photometry.DefaultZP, photometry.AB)
			if err != nil {
				return nil, fmt.Errorf("model flux for band %s: %w", band, err)
			}
			grid := opts.Model.TimeGrid()
			panel.HasModel = true
			panel.ModelTime = make([]float64, len(grid))
			for k, t := range grid {
				panel.ModelTime[k] = t - t0
			}
			panel.ModelFlux = mflux
			if opts.IncludeModelError && mfluxerr != nil {
				panel.ModelFluxErr = mfluxerr
			}

			if opts.ShowPulls {
				obsTimes := make([]float64, len(idx))
				for k, i := range idx {
					obsTimes[k] = batch.Time[i]
				}
				atObs, err := opts.Model.BandFluxAt(band, obsTimes, photometry.DefaultZP, photometry.AB)
				if err != nil {
					return nil, fmt.Errorf("model flux at observations for band %s: %w", band, err)
				}
				panel.Pulls = make([]float64, len(idx))
				for k := range idx {
					panel.Pulls[k] = (panel.Flux[k] - atObs[k]) / panel.FluxErr[k]
				}
			}
		}

		panels = append(panels, panel)
	}

	sort.Slice(panels, func(i, j int) bool { return panels[i].WaveEff < panels[j].WaveEff })
	return panels, nil
}

// minMax returns the extrema of a non-empty slice.
func minMax(xs []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, x := range xs {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	return lo, hi
}

// errPoints pairs coordinates with symmetric y error bars.
type errPoints struct {
	plotter.XYs
	plotter.YErrors
}

// noTicks hides an axis's tick marks and labels.
type noTicks struct{}

func (noTicks) Ticks(min, max float64) []plot.Tick { return nil }

// drawBandPanel builds the main plot for one band, and the pull subplot when
// pulls were computed for it.
func drawBandPanel(panel bandPanel, leftColumn, showPulls bool) (*plot.Plot, *plot.Plot, error) {
	p := plot.New()

	pts := errPoints{
		XYs:     make(plotter.XYs, len(panel.Time)),
		YErrors: make(plotter.YErrors, len(panel.Time)),
	}
	for i := range panel.Time {
		pts.XYs[i].X = panel.Time[i]
		pts.XYs[i].Y = panel.Flux[i]
		pts.YErrors[i].Low = panel.FluxErr[i]
		pts.YErrors[i].High = panel.FluxErr[i]
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, nil, err
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(1.5)
	scatter.GlyphStyle.Color = panel.Color

	errbars, err := plotter.NewYErrorBars(pts)
	if err != nil {
		return nil, nil, err
	}
	errbars.LineStyle.Color = panel.Color
	p.Add(scatter, errbars)

	xmin, xmax := minMax(panel.Time)
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for i := range panel.Flux {
		ymin = math.Min(ymin, panel.Flux[i]-panel.FluxErr[i])
		ymax = math.Max(ymax, panel.Flux[i]+panel.FluxErr[i])
	}
	var modelPeak float64

	if panel.HasModel {
		line := make(plotter.XYs, len(panel.ModelTime))
		for i := range panel.ModelTime {
			line[i].X = panel.ModelTime[i]
			line[i].Y = panel.ModelFlux[i]
		}
		curve, err := plotter.NewLine(line)
		if err != nil {
			return nil, nil, err
		}
		curve.LineStyle.Color = panel.Color
		curve.LineStyle.Width = vg.Points(1)

		if panel.ModelFluxErr != nil {
			band, err := shadedBand(panel.ModelTime, panel.ModelFlux, panel.ModelFluxErr, panel.Color)
			if err != nil {
				return nil, nil, err
			}
			p.Add(band)
		}
		p.Add(curve)

		mmin, mmax := minMax(panel.ModelTime)
		xmin = math.Min(xmin, mmin)
		xmax = math.Max(xmax, mmax)
		fmin, fmax := minMax(panel.ModelFlux)
		ymin = math.Min(ymin, fmin)
		ymax = math.Max(ymax, fmax)
		modelPeak = fmax
	}

	xpad := 0.05 * (xmax - xmin)
	ypad := 0.05 * (ymax - ymin)
	p.X.Min, p.X.Max = xmin-xpad, xmax+xpad
	ymin, ymax = ymin-ypad, ymax+ypad
	if panel.HasModel {
		// The flux range stays within [-0.2, 2] x the model peak, padding
		// included.
		ymin = math.Max(ymin, -0.2*modelPeak)
		ymax = math.Min(ymax, 2*modelPeak)
	}
	p.Y.Min, p.Y.Max = ymin, ymax

	if err := annotate(p, panel.Band.String()); err != nil {
		return nil, nil, err
	}

	if leftColumn {
		p.Y.Label.Text = "flux (ZP_AB = 25)"
	}

	xlabel := "time"
	if panel.HasModel {
		xlabel = fmt.Sprintf("time - %.2f", panel.T0)
	}

	if !(showPulls && panel.Pulls != nil) {
		p.X.Label.Text = xlabel
		return p, nil, nil
	}

	// Pull subpanel: the main panel gives up its x axis to it.
	p.X.Tick.Marker = noTicks{}

	pp := plot.New()
	pp.X.Min, pp.X.Max = p.X.Min, p.X.Max
	pp.X.Label.Text = xlabel
	if leftColumn {
		pp.Y.Label.Text = "pull"
	}

	pulls := make(plotter.XYs, len(panel.Time))
	for i := range panel.Time {
		pulls[i].X = panel.Time[i]
		pulls[i].Y = panel.Pulls[i]
	}
	pullDots, err := plotter.NewScatter(pulls)
	if err != nil {
		return nil, nil, err
	}
	pullDots.GlyphStyle.Shape = draw.CircleGlyph{}
	pullDots.GlyphStyle.Radius = vg.Points(2)
	pullDots.GlyphStyle.Color = panel.Color

	zero, err := plotter.NewLine(plotter.XYs{{X: pp.X.Min, Y: 0}, {X: pp.X.Max, Y: 0}})
	if err != nil {
		return nil, nil, err
	}
	zero.LineStyle.Color = panel.Color

	pp.Add(zero, pullDots)
	return p, pp, nil
}

// shadedBand builds the filled polygon between modelFlux-err and
// modelFlux+err.
func shadedBand(times, flux, fluxerr []float64, col color.Color) (*plotter.Polygon, error) {
	n := len(times)
	ring := make(plotter.XYs, 0, 2*n)
	for i := 0; i < n; i++ {
		ring = append(ring, plotter.XY{X: times[i], Y: flux[i] + fluxerr[i]})
	}
	for i := n - 1; i >= 0; i-- {
		ring = append(ring, plotter.XY{X: times[i], Y: flux[i] - fluxerr[i]})
	}

	poly, err := plotter.NewPolygon(ring)
	if err != nil {
		return nil, err
	}
	r, g, b, _ := col.RGBA()
	poly.Color = color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 51}
	poly.LineStyle.Color = color.NRGBA{}
	return poly, nil
}

// annotate places a text label in the top-right corner of the plot, which
// must already have its ranges set.
func annotate(p *plot.Plot, text string) error {
	xspan := p.X.Max - p.X.Min
	yspan := p.Y.Max - p.Y.Min
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: p.X.Max - 0.25*xspan, Y: p.Y.Max - 0.08*yspan}},
		Labels: []string{text},
	})
	if err != nil {
		return err
	}
	p.Add(labels)
	return nil
}
