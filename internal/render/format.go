package render

import (
	"fmt"
	"math"

	"snplot/domain/core"
)

// FormatValueErr formats a value and its positive uncertainty as
// "value +/- error", with the decimal precision chosen from the
// uncertainty's leading significant digit: FormatValueErr(1.2345, 0.012)
// gives "1.23 +/- 0.01" and FormatValueErr(123.4, 5.0) gives "123 +/- 5".
func FormatValueErr(v, e float64) (string, error) {
	if e <= 0 {
		return "", fmt.Errorf("%w: got %g", core.ErrInvalidErrorBar, e)
	}
	prec := -int(math.Ceil(math.Log10(e))) + 1
	if prec < 0 {
		prec = 0
	}
	return fmt.Sprintf("%.*f +/- %.*f", prec, v, prec, e), nil
}
