package table

import (
	"fmt"
	"strconv"
	"strings"

	"snplot/domain/posterior"
)

// ReadSamples loads a weighted posterior sample set from a CSV or Excel
// table: one column per parameter plus a "weight" column, one row per sample.
// A missing weight column gives every sample unit weight.
func ReadSamples(filePath string) (*posterior.SampleSet, error) {
	r := NewReader(filePath)

	var rows [][]string
	var err error
	switch r.fileType {
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		rows, err = r.readCSVRows()
	}
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s must have a header row and at least one sample row", filePath)
	}

	weightCol := -1
	var names []string
	var paramCols []int
	for i, name := range rows[0] {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "weight" {
			weightCol = i
			continue
		}
		names = append(names, name)
		paramCols = append(paramCols, i)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%s has no parameter columns", filePath)
	}

	set := &posterior.SampleSet{Names: names}
	for n, row := range rows[1:] {
		sample := make([]float64, len(paramCols))
		for j, col := range paramCols {
			if col >= len(row) {
				return nil, fmt.Errorf("row %d: missing value for %s", n+1, names[j])
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad %s value %q", n+1, names[j], row[col])
			}
			sample[j] = v
		}

		weight := 1.0
		if weightCol >= 0 {
			if weightCol >= len(row) {
				return nil, fmt.Errorf("row %d: missing weight", n+1)
			}
			weight, err = strconv.ParseFloat(strings.TrimSpace(row[weightCol]), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad weight %q", n+1, row[weightCol])
			}
		}

		set.Samples = append(set.Samples, sample)
		set.Weights = append(set.Weights, weight)
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}
