package indicator

import (
	"time"

	"github.com/pkg/errors"

	"github.com/stocklens/stocklens/pkg/datatype/floats"
	"github.com/stocklens/stocklens/pkg/types"
)

/*
obv implements on-balance volume indicator

On-Balance Volume (OBV)
- https://www.investopedia.com/terms/o/onbalancevolume.asp

The series starts at zero. Every later bar adds its volume when the
close rose, subtracts it when the close fell, and keeps the running
total unchanged on a flat close. One value per bar.
*/
type OBV struct {
	types.IntervalWindow
	Values   floats.Slice
	PrePrice float64
	EndTime  time.Time
}

func (inc *OBV) Update(price, volume float64) {
	if len(inc.Values) == 0 {
		inc.PrePrice = price
		inc.Values.Push(0)
		return
	}

	last := inc.Last()
	switch {
	case price > inc.PrePrice:
		inc.Values.Push(last + volume)
	case price < inc.PrePrice:
		inc.Values.Push(last - volume)
	default:
		inc.Values.Push(last)
	}

	inc.PrePrice = price
}

func (inc *OBV) Last() float64 {
	if len(inc.Values) == 0 {
		return 0.0
	}

	return inc.Values[len(inc.Values)-1]
}

func (inc *OBV) Index(i int) float64 {
	length := len(inc.Values)
	if length == 0 || length-i-1 < 0 {
		return 0.0
	}

	return inc.Values[length-i-1]
}

func (inc *OBV) Length() int {
	return len(inc.Values)
}

func (inc *OBV) PushK(b types.Bar) {
	inc.Update(b.Close, b.Volume)
}

// CalculateAndUpdate runs the accumulation over the whole window. The
// seed value is the first bar, an empty window has no seed and is an
// error.
func (inc *OBV) CalculateAndUpdate(bars types.BarSlice) error {
	if len(bars) == 0 {
		return errors.New("empty bar window")
	}

	for _, b := range bars {
		if inc.EndTime != zeroTime && !b.StartTime.After(inc.EndTime) {
			continue
		}

		inc.PushK(b)
	}

	inc.EndTime = bars.Last().StartTime
	return nil
}
