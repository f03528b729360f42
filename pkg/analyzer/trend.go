package analyzer

import (
	"gonum.org/v1/gonum/stat"
)

// TrendSlope fits a least squares line over the closing prices and
// returns its slope in price units per bar. Windows shorter than two
// bars carry no trend and yield zero.
func TrendSlope(closes []float64) float64 {
	if len(closes) < 2 {
		return 0.0
	}

	x := make([]float64, len(closes))
	for i := range x {
		x[i] = float64(i)
	}

	_, slope := stat.LinearRegression(x, closes, nil, false)
	return slope
}
