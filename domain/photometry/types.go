package photometry

import (
	"fmt"
	"strings"

	"snplot/domain/core"
)

// BandKey identifies a bandpass. Keys are lowercase and interned at parse
// time so lookups never depend on caller casing.
type BandKey string

// SysKey identifies a magnitude system (zeropoint convention).
type SysKey string

// AB is the default target magnitude system for normalization.
const AB = SysKey("ab")

// DefaultZP is the default target zeropoint for normalization.
const DefaultZP = 25.0

func (b BandKey) String() string { return string(b) }
func (s SysKey) String() string  { return string(s) }

// ParseBandKey parses a string into a BandKey
func ParseBandKey(s string) (BandKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", fmt.Errorf("band key cannot be empty")
	}
	return BandKey(s), nil
}

// ParseSysKey parses a string into a SysKey
func ParseSysKey(s string) (SysKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", fmt.Errorf("magnitude system key cannot be empty")
	}
	return SysKey(s), nil
}

// Batch is a columnar table of photometric observations, one row per
// measurement: time, band, flux, flux error, native zeropoint and native
// magnitude system. All columns must have identical length.
type Batch struct {
	Time    []float64
	Band    []BandKey
	Flux    []float64
	FluxErr []float64
	ZP      []float64
	ZPSys   []SysKey
}

// Len returns the number of rows in the batch.
func (b *Batch) Len() int { return len(b.Time) }

// Validate checks the equal-length column invariant.
func (b *Batch) Validate() error {
	n := len(b.Time)
	if n == 0 {
		return core.ErrEmptyBatch
	}
	for name, got := range map[string]int{
		"band":    len(b.Band),
		"flux":    len(b.Flux),
		"fluxerr": len(b.FluxErr),
		"zp":      len(b.ZP),
		"zpsys":   len(b.ZPSys),
	} {
		if got != n {
			return fmt.Errorf("%w: column %s has %d rows, time has %d",
				core.ErrColumnMismatch, name, got, n)
		}
	}
	return nil
}

// Bands returns the distinct band keys present, in first-seen order.
func (b *Batch) Bands() []BandKey {
	seen := make(map[BandKey]bool, 8)
	var out []BandKey
	for _, band := range b.Band {
		if !seen[band] {
			seen[band] = true
			out = append(out, band)
		}
	}
	return out
}

// RowsFor returns the row indices belonging to the given band.
func (b *Batch) RowsFor(band BandKey) []int {
	var idx []int
	for i, bb := range b.Band {
		if bb == band {
			idx = append(idx, i)
		}
	}
	return idx
}
