package indicator

import (
	"github.com/markcheno/go-talib"

	"github.com/stocklens/stocklens/pkg/datatype/floats"
)

// TechLib computes the indicator families this package does not
// implement by hand. The analyzer depends on this interface so tests
// can stub the math out.
type TechLib interface {
	// RSI returns the relative strength index over closes, aligned to
	// the first defined bar: values[k] belongs to bar window+k. ok is
	// false when closes is shorter than window+1 bars.
	RSI(closes []float64, window int) (values floats.Slice, ok bool)

	// MACD returns the MACD line, the signal line and the histogram,
	// all aligned so that [k] belongs to bar
	// MACDLookback(slow, signalWindow)+k. ok is false when closes is
	// shorter than slow+signalWindow-1 bars.
	MACD(closes []float64, fast, slow, signalWindow int) (line, signal, hist floats.Slice, ok bool)
}

// RSILookback is the number of leading bars that have no RSI value.
func RSILookback(window int) int {
	return window
}

// MACDLookback is the number of leading bars that have no complete
// MACD value. The line alone settles earlier, but the signal line and
// the histogram need slow+signalWindow-1 bars.
func MACDLookback(slow, signalWindow int) int {
	return slow + signalWindow - 2
}

// TALib implements TechLib with the markcheno port of TA-Lib. The port
// returns slices of the input length with zeros below the lookback, so
// the wrappers cut the undefined head off.
type TALib struct{}

var _ TechLib = TALib{}

func (TALib) RSI(closes []float64, window int) (floats.Slice, bool) {
	lookback := RSILookback(window)
	if len(closes) < lookback+1 {
		return nil, false
	}

	raw := talib.Rsi(closes, window)
	return floats.Slice(raw[lookback:]), true
}

func (TALib) MACD(closes []float64, fast, slow, signalWindow int) (line, signal, hist floats.Slice, ok bool) {
	lookback := MACDLookback(slow, signalWindow)
	if len(closes) < lookback+1 {
		return nil, nil, nil, false
	}

	rawLine, rawSignal, rawHist := talib.Macd(closes, fast, slow, signalWindow)
	return floats.Slice(rawLine[lookback:]),
		floats.Slice(rawSignal[lookback:]),
		floats.Slice(rawHist[lookback:]),
		true
}
