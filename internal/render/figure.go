package render

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"snplot/domain/core"
	"snplot/internal/logging"
)

// Figure is an explicit per-call drawing surface. Each plotting call creates
// its own Figure, draws panels into it and saves it; there is no shared
// drawing state between calls.
type Figure struct {
	canvas *vgimg.Canvas
	dc     draw.Canvas
	tiles  draw.Tiles
}

// NewFigure creates a figure of the given size tiled into rows x cols panels,
// rasterized at the given DPI; dpi <= 0 uses the canvas default.
func NewFigure(w, h vg.Length, rows, cols, dpi int) *Figure {
	var canvas *vgimg.Canvas
	if dpi > 0 {
		canvas = vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
	} else {
		canvas = vgimg.New(w, h)
	}
	return &Figure{
		canvas: canvas,
		dc:     draw.New(canvas),
		tiles: draw.Tiles{
			Rows:      rows,
			Cols:      cols,
			PadX:      vg.Millimeter * 2,
			PadY:      vg.Millimeter * 2,
			PadTop:    vg.Millimeter * 2,
			PadBottom: vg.Millimeter * 2,
			PadLeft:   vg.Millimeter * 2,
			PadRight:  vg.Millimeter * 2,
		},
	}
}

// Panel returns the drawing canvas for the tile at (row, col), row 0 at the
// top.
func (f *Figure) Panel(row, col int) draw.Canvas {
	return f.tiles.At(f.dc, col, row)
}

// DrawPlot draws a plot into the whole tile at (row, col).
func (f *Figure) DrawPlot(p *plot.Plot, row, col int) {
	p.Draw(f.Panel(row, col))
}

// DrawSplitPlot draws a main plot over a shorter secondary plot inside the
// tile at (row, col). frac is the height fraction given to the secondary
// plot.
func (f *Figure) DrawSplitPlot(main, secondary *plot.Plot, row, col int, frac float64) {
	tile := f.Panel(row, col)
	tileH := tile.Max.Y - tile.Min.Y
	secH := vg.Length(frac) * tileH
	main.Draw(draw.Crop(tile, 0, 0, secH, 0))
	secondary.Draw(draw.Crop(tile, 0, 0, 0, secH-tileH))
}

// SavePNG writes the figure to the given path.
func (f *Figure) SavePNG(path string) error {
	w, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer w.Close()

	png := vgimg.PngCanvas{Canvas: f.canvas}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// resolveOutputPath substitutes a uuid-named file under the OS temp dir when
// no path was given, standing in for the interactive display the plotting
// backend does not have.
func resolveOutputPath(path string) string {
	if path != "" {
		return path
	}
	tmp := filepath.Join(os.TempDir(), fmt.Sprintf("snplot-%s.png", core.NewID()))
	logging.Default.Info("no output path given, rendering to %s", tmp)
	return tmp
}
