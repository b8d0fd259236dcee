package render

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"snplot/domain/core"
	"snplot/domain/posterior"
)

// pdfBins is the number of histogram bins per parameter panel.
const pdfBins = 30

// pdfRangeSigma sets the display range of each panel to avg +/- 5*err.
const pdfRangeSigma = 5.0

var histFill = color.NRGBA{R: 70, G: 130, B: 180, A: 255}

// PDFOptions control a posterior histogram figure.
type PDFOptions struct {
	// Path is the output PNG path. Empty renders to a uuid-named file under
	// the OS temp dir.
	Path string
	// Cols is the number of histogram columns; 0 means 2.
	Cols int
	// DPI sets the raster resolution; 0 uses the canvas default.
	DPI int
}

// PlotPDFs renders one weighted histogram panel per parameter, each
// restricted to its summary's avg +/- 5*err range and annotated with the
// formatted summary. Summaries must be parallel to the sample set's
// parameters. It returns the path the figure was written to.
func (r *Renderer) PlotPDFs(set *posterior.SampleSet, summaries []posterior.Summary, opts PDFOptions) (string, error) {
	if err := set.Validate(); err != nil {
		return "", err
	}
	if len(summaries) != len(set.Names) {
		return "", core.NewShapeError("summaries", len(set.Names), len(summaries))
	}

	cols := opts.Cols
	if cols <= 0 {
		cols = 2
	}
	npar := len(set.Names)
	rows := (npar-1)/cols + 1

	fig := NewFigure(vg.Length(4*cols)*vg.Inch, vg.Length(3*rows)*vg.Inch, rows, cols, opts.DPI)

	for j := 0; j < npar; j++ {
		p, err := drawPDFPanel(set.Column(j), set.Weights, summaries[j])
		if err != nil {
			return "", err
		}
		// Panels are addressed by the 0-based parameter index.
		fig.DrawPlot(p, j/cols, j%cols)
	}

	path := resolveOutputPath(opts.Path)
	if err := fig.SavePNG(path); err != nil {
		return "", err
	}
	return path, nil
}

// drawPDFPanel builds one weighted histogram panel.
func drawPDFPanel(values, weights []float64, summary posterior.Summary) (*plot.Plot, error) {
	text, err := FormatValueErr(summary.Average, summary.Error)
	if err != nil {
		return nil, err
	}

	lo := summary.Average - pdfRangeSigma*summary.Error
	hi := summary.Average + pdfRangeSigma*summary.Error
	binWidth := (hi - lo) / pdfBins

	// Bin edges are fixed over the display range; samples outside it are
	// excluded.
	bins := make([]plotter.HistogramBin, pdfBins)
	for b := range bins {
		bins[b].Min = lo + float64(b)*binWidth
		bins[b].Max = lo + float64(b+1)*binWidth
	}
	maxWeight := 0.0
	for i, v := range values {
		if v < lo || v > hi {
			continue
		}
		b := int((v - lo) / binWidth)
		if b == pdfBins {
			b--
		}
		bins[b].Weight += weights[i]
		if bins[b].Weight > maxWeight {
			maxWeight = bins[b].Weight
		}
	}

	hist := &plotter.Histogram{
		Bins:      bins,
		Width:     hi - lo,
		FillColor: histFill,
		LineStyle: plotter.DefaultLineStyle,
	}

	p := plot.New()
	p.Add(hist)
	p.X.Min, p.X.Max = lo, hi
	p.Y.Min, p.Y.Max = 0, 1.15*maxWeight
	if maxWeight == 0 {
		p.Y.Max = 1
	}

	if err := annotate(p, summary.Name+" = "+text); err != nil {
		return nil, err
	}
	return p, nil
}
