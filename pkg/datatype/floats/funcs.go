package floats

// CrossOver reports whether series1 crossed above series2 on the last
// value: at or below it one value earlier, above it now. Both series
// are aligned newest last. Fewer than three values never cross, a
// series that short has no history to cross from.
func CrossOver(series1 []float64, series2 []float64) bool {
	if len(series1) < 3 || len(series2) < 3 {
		return false
	}

	n := len(series1)

	return series1[n-2] <= series2[n-2] && series1[n-1] > series2[n-1]
}

// CrossUnder reports whether series1 crossed below series2 on the last
// value.
func CrossUnder(series1 []float64, series2 []float64) bool {
	if len(series1) < 3 || len(series2) < 3 {
		return false
	}

	n := len(series1)

	return series1[n-2] > series2[n-2] && series1[n-1] <= series2[n-1]
}
