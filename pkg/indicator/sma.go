package indicator

import (
	"time"

	"github.com/stocklens/stocklens/pkg/datatype/floats"
	"github.com/stocklens/stocklens/pkg/types"
)

var zeroTime time.Time

/*
sma implements the simple moving average of the close price

Simple Moving Average (SMA)
- https://www.investopedia.com/terms/s/sma.asp

Values[0] is the average of the first Window closes. Earlier bars have
no value, Offset() reports the index of the first bar that does.
*/
type SMA struct {
	types.IntervalWindow
	Values  floats.Slice
	Prices  floats.Slice
	EndTime time.Time
}

func (inc *SMA) Update(price float64) {
	inc.Prices.Push(price)

	if inc.Prices.Length() < inc.Window {
		return
	}

	inc.Values.Push(inc.Prices.Tail(inc.Window).Mean())
}

func (inc *SMA) Last() float64 {
	if len(inc.Values) == 0 {
		return 0.0
	}

	return inc.Values[len(inc.Values)-1]
}

func (inc *SMA) Index(i int) float64 {
	length := len(inc.Values)
	if length == 0 || length-i-1 < 0 {
		return 0.0
	}

	return inc.Values[length-i-1]
}

func (inc *SMA) Length() int {
	return len(inc.Values)
}

// Offset is the index of the first bar that has a value.
func (inc *SMA) Offset() int {
	return inc.Window - 1
}

func (inc *SMA) PushK(b types.Bar) {
	inc.Update(b.Close)
}

func (inc *SMA) CalculateAndUpdate(bars types.BarSlice) {
	if len(bars) == 0 {
		return
	}

	for _, b := range bars {
		if inc.EndTime != zeroTime && !b.StartTime.After(inc.EndTime) {
			continue
		}

		inc.PushK(b)
	}

	inc.EndTime = bars.Last().StartTime
}
