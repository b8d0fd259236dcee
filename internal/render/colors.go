package render

import (
	"image/color"

	"gonum.org/v1/plot/palette"
)

// Display wavelength range used for color mapping, Angstroms. Bands outside
// this range saturate at the palette ends.
const (
	dispMin = 3000.0
	dispMax = 10000.0
)

var rainbow = palette.Rainbow(256, palette.Red, palette.Magenta, 1, 1, 1).Colors()

// bandColor maps an effective wavelength onto the rainbow palette: long
// wavelengths toward red, short toward violet.
func bandColor(waveEff float64) color.Color {
	frac := (dispMax - waveEff) / (dispMax - dispMin)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return rainbow[int(frac*float64(len(rainbow)-1))]
}
