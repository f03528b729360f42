package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func waveCloses(n int) []float64 {
	closes := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		closes = append(closes, 100+5*math.Sin(float64(i)/3))
	}
	return closes
}

func Test_TALib_RSI(t *testing.T) {
	lib := TALib{}

	// one value short of the lookback
	_, ok := lib.RSI(waveCloses(14), 14)
	assert.False(t, ok)

	values, ok := lib.RSI(waveCloses(15), 14)
	assert.True(t, ok)
	assert.Equal(t, 1, values.Length())

	values, ok = lib.RSI(waveCloses(60), 14)
	assert.True(t, ok)
	assert.Equal(t, 60-14, values.Length())
	for _, v := range values {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 100.0)
	}
}

func Test_TALib_RSI_AllGains(t *testing.T) {
	Delta := 0.000001
	closes := make([]float64, 0, 30)
	for i := 0; i < 30; i++ {
		closes = append(closes, float64(i+1))
	}

	values, ok := TALib{}.RSI(closes, 14)
	assert.True(t, ok)
	for _, v := range values {
		assert.InDelta(t, 100.0, v, Delta)
	}
}

func Test_TALib_MACD(t *testing.T) {
	Delta := 0.000001
	lib := TALib{}

	_, _, _, ok := lib.MACD(waveCloses(33), 12, 26, 9)
	assert.False(t, ok)

	line, signal, hist, ok := lib.MACD(waveCloses(34), 12, 26, 9)
	assert.True(t, ok)
	assert.Equal(t, 1, line.Length())
	assert.Equal(t, 1, signal.Length())
	assert.Equal(t, 1, hist.Length())

	line, signal, hist, ok = lib.MACD(waveCloses(90), 12, 26, 9)
	assert.True(t, ok)
	assert.Equal(t, 90-33, line.Length())
	for k := range hist {
		assert.InDelta(t, line[k]-signal[k], hist[k], Delta)
	}
}

func Test_MACDLookback(t *testing.T) {
	assert.Equal(t, 33, MACDLookback(26, 9))
	assert.Equal(t, 14, RSILookback(14))
}
