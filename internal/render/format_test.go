package render

import (
	"errors"
	"testing"

	"snplot/domain/core"
)

func TestFormatValueErr(t *testing.T) {
	cases := []struct {
		v, e float64
		want string
	}{
		{1.2345, 0.012, "1.23 +/- 0.01"},
		{123.4, 5.0, "123 +/- 5"},
		{55100.32, 0.4, "55100.3 +/- 0.4"},
		{-19.46, 0.3, "-19.5 +/- 0.3"},
		{0.5, 25, "0 +/- 25"},
	}

	for _, c := range cases {
		got, err := FormatValueErr(c.v, c.e)
		if err != nil {
			t.Errorf("FormatValueErr(%v, %v) error: %v", c.v, c.e, err)
			continue
		}
		if got != c.want {
			t.Errorf("FormatValueErr(%v, %v) = %q, want %q", c.v, c.e, got, c.want)
		}
	}
}

func TestFormatValueErr_NonPositiveUncertainty(t *testing.T) {
	for _, e := range []float64{0, -0.5} {
		if _, err := FormatValueErr(1.0, e); !errors.Is(err, core.ErrInvalidErrorBar) {
			t.Errorf("FormatValueErr(1, %v) = %v, want ErrInvalidErrorBar", e, err)
		}
	}
}
