package floats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrossOver(t *testing.T) {
	tests := []struct {
		name    string
		series1 []float64
		series2 []float64
		want    bool
	}{
		{
			name:    "crosses above on the last value",
			series1: []float64{1.0, 2.0, 4.0},
			series2: []float64{3.0, 3.0, 3.0},
			want:    true,
		},
		{
			name:    "was already above",
			series1: []float64{4.0, 5.0, 6.0},
			series2: []float64{3.0, 3.0, 3.0},
			want:    false,
		},
		{
			name:    "stays below",
			series1: []float64{1.0, 1.5, 2.0},
			series2: []float64{3.0, 3.0, 3.0},
			want:    false,
		},
		{
			name:    "touches without crossing",
			series1: []float64{1.0, 2.0, 3.0},
			series2: []float64{3.0, 3.0, 3.0},
			want:    false,
		},
		{
			name:    "too short",
			series1: []float64{1.0, 4.0},
			series2: []float64{3.0, 3.0},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CrossOver(tt.series1, tt.series2))
		})
	}
}

func TestCrossUnder(t *testing.T) {
	tests := []struct {
		name    string
		series1 []float64
		series2 []float64
		want    bool
	}{
		{
			name:    "crosses below on the last value",
			series1: []float64{5.0, 4.0, 2.0},
			series2: []float64{3.0, 3.0, 3.0},
			want:    true,
		},
		{
			name:    "was already below",
			series1: []float64{2.0, 1.5, 1.0},
			series2: []float64{3.0, 3.0, 3.0},
			want:    false,
		},
		{
			name:    "stays above",
			series1: []float64{5.0, 5.5, 6.0},
			series2: []float64{3.0, 3.0, 3.0},
			want:    false,
		},
		{
			name:    "too short",
			series1: []float64{4.0, 2.0},
			series2: []float64{3.0, 3.0},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CrossUnder(tt.series1, tt.series2))
		})
	}
}
