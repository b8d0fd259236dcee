package posterior

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"snplot/domain/core"
)

// SampleSet holds weighted posterior samples for a set of parameters.
// Samples is row-major: Samples[i][j] is sample i of parameter j. Callers own
// the slices; nothing here mutates them.
type SampleSet struct {
	Names   []string
	Samples [][]float64
	Weights []float64
}

// Summary describes one parameter's marginal posterior.
type Summary struct {
	Name    string
	Average float64
	Error   float64
}

// Validate checks the sample/weight/name shape invariants.
func (s *SampleSet) Validate() error {
	if len(s.Samples) == 0 {
		return fmt.Errorf("%w: no samples", core.ErrShapeMismatch)
	}
	if len(s.Weights) != len(s.Samples) {
		return core.NewShapeError("weights", len(s.Samples), len(s.Weights))
	}
	npar := len(s.Names)
	if npar == 0 {
		return fmt.Errorf("%w: no parameter names", core.ErrShapeMismatch)
	}
	for i, row := range s.Samples {
		if len(row) != npar {
			return core.NewShapeError(fmt.Sprintf("sample row %d", i), npar, len(row))
		}
	}
	return nil
}

// Column returns parameter j's values across all samples.
func (s *SampleSet) Column(j int) []float64 {
	col := make([]float64, len(s.Samples))
	for i, row := range s.Samples {
		col[i] = row[j]
	}
	return col
}

// Summaries computes the weighted mean and standard deviation of each
// parameter's marginal posterior.
func (s *SampleSet) Summaries() ([]Summary, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	out := make([]Summary, len(s.Names))
	for j, name := range s.Names {
		col := s.Column(j)
		mean := stat.Mean(col, s.Weights)
		sd := math.Sqrt(stat.Variance(col, s.Weights))
		out[j] = Summary{Name: name, Average: mean, Error: sd}
	}
	return out, nil
}
