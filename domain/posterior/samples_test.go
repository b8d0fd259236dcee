package posterior

import (
	"errors"
	"math"
	"testing"

	"snplot/domain/core"
)

func TestSummaries_WeightedMoments(t *testing.T) {
	// Parameter 0: values 1 and 3 with weights 3 and 1 -> mean 1.5.
	set := &SampleSet{
		Names:   []string{"a"},
		Samples: [][]float64{{1}, {3}},
		Weights: []float64{3, 1},
	}

	summaries, err := set.Summaries()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(summaries))
	}
	if math.Abs(summaries[0].Average-1.5) > 1e-12 {
		t.Errorf("weighted mean = %v, want 1.5", summaries[0].Average)
	}
	if summaries[0].Error <= 0 {
		t.Errorf("weighted error = %v, want positive", summaries[0].Error)
	}
}

func TestSummaries_UniformWeightsMatchPlainMean(t *testing.T) {
	set := &SampleSet{
		Names:   []string{"a", "b"},
		Samples: [][]float64{{1, 10}, {2, 20}, {3, 30}},
		Weights: []float64{1, 1, 1},
	}

	summaries, err := set.Summaries()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(summaries[0].Average-2) > 1e-12 {
		t.Errorf("a mean = %v, want 2", summaries[0].Average)
	}
	if math.Abs(summaries[1].Average-20) > 1e-12 {
		t.Errorf("b mean = %v, want 20", summaries[1].Average)
	}
}

func TestValidate_ShapeErrors(t *testing.T) {
	cases := map[string]*SampleSet{
		"no samples":    {Names: []string{"a"}, Weights: []float64{1}},
		"weight length": {Names: []string{"a"}, Samples: [][]float64{{1}, {2}}, Weights: []float64{1}},
		"no names":      {Samples: [][]float64{{1}}, Weights: []float64{1}},
		"ragged row":    {Names: []string{"a", "b"}, Samples: [][]float64{{1, 2}, {3}}, Weights: []float64{1, 1}},
	}

	for name, set := range cases {
		if err := set.Validate(); !errors.Is(err, core.ErrShapeMismatch) {
			t.Errorf("%s: got %v, want ErrShapeMismatch", name, err)
		}
	}
}

func TestColumn(t *testing.T) {
	set := &SampleSet{
		Names:   []string{"a", "b"},
		Samples: [][]float64{{1, 10}, {2, 20}},
		Weights: []float64{1, 1},
	}
	col := set.Column(1)
	if len(col) != 2 || col[0] != 10 || col[1] != 20 {
		t.Fatalf("Column(1) = %v, want [10 20]", col)
	}
}
