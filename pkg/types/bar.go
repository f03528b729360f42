package types

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/stocklens/stocklens/pkg/datatype/floats"
)

// Bar is a single OHLCV observation of a symbol.
//
// Volume is NaN when the upstream source did not report it. Use
// HasVolume to test for that instead of comparing against zero, a zero
// volume is a legitimate quiet session.
type Bar struct {
	Symbol    string    `json:"symbol"`
	StartTime time.Time `json:"startTime"`
	Interval  Interval  `json:"interval"`

	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

func (b Bar) HasVolume() bool {
	return !math.IsNaN(b.Volume)
}

// Mid returns the midpoint of the bar range.
func (b Bar) Mid() float64 {
	return (b.High + b.Low) / 2
}

func (b Bar) String() string {
	return fmt.Sprintf("%s %s %s Open: %.4f High: %.4f Low: %.4f Close: %.4f Volume: %.4f",
		b.Symbol,
		b.Interval,
		b.StartTime.Format(time.RFC3339),
		b.Open, b.High, b.Low, b.Close, b.Volume)
}

// MarshalJSON emits null for a missing volume since NaN is not valid JSON.
func (b Bar) MarshalJSON() ([]byte, error) {
	type alias Bar
	aux := struct {
		alias
		Volume *float64 `json:"volume"`
	}{
		alias: alias(b),
	}

	if b.HasVolume() {
		aux.Volume = &b.Volume
	}

	return json.Marshal(aux)
}

func (b *Bar) UnmarshalJSON(data []byte) error {
	type alias Bar
	aux := struct {
		*alias
		Volume *float64 `json:"volume"`
	}{
		alias: (*alias)(b),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.Volume != nil {
		b.Volume = *aux.Volume
	} else {
		b.Volume = math.NaN()
	}

	return nil
}

// BarSlice is an ordered window of bars, oldest first.
type BarSlice []Bar

func (s BarSlice) Len() int {
	return len(s)
}

func (s BarSlice) First() Bar {
	return s[0]
}

func (s BarSlice) Last() Bar {
	return s[len(s)-1]
}

func (s BarSlice) Opens() floats.Slice {
	var values floats.Slice
	for _, b := range s {
		values.Push(b.Open)
	}
	return values
}

func (s BarSlice) Highs() floats.Slice {
	var values floats.Slice
	for _, b := range s {
		values.Push(b.High)
	}
	return values
}

func (s BarSlice) Lows() floats.Slice {
	var values floats.Slice
	for _, b := range s {
		values.Push(b.Low)
	}
	return values
}

func (s BarSlice) Closes() floats.Slice {
	var values floats.Slice
	for _, b := range s {
		values.Push(b.Close)
	}
	return values
}

func (s BarSlice) Volumes() floats.Slice {
	var values floats.Slice
	for _, b := range s {
		values.Push(b.Volume)
	}
	return values
}

func (s BarSlice) StartTimes() []time.Time {
	times := make([]time.Time, 0, len(s))
	for _, b := range s {
		times = append(times, b.StartTime)
	}
	return times
}

// HasVolume reports whether every bar in the window carries a volume
// reading. On-balance volume needs the full series, a single gap makes
// the whole window unusable.
func (s BarSlice) HasVolume() bool {
	for _, b := range s {
		if !b.HasVolume() {
			return false
		}
	}
	return true
}

// High returns the highest high of the window.
func (s BarSlice) High() float64 {
	high := math.Inf(-1)
	for _, b := range s {
		high = math.Max(high, b.High)
	}
	return high
}

// Low returns the lowest low of the window.
func (s BarSlice) Low() float64 {
	low := math.Inf(1)
	for _, b := range s {
		low = math.Min(low, b.Low)
	}
	return low
}

// Change returns the close change between the first and the last bar.
func (s BarSlice) Change() float64 {
	return s.Last().Close - s.First().Close
}

// ChangeRate returns the close change as a ratio of the first close.
func (s BarSlice) ChangeRate() float64 {
	first := s.First().Close
	if first == 0 {
		return 0
	}
	return s.Change() / first
}

func (s BarSlice) Tail(size int) BarSlice {
	length := len(s)
	if length <= size {
		win := make(BarSlice, length)
		copy(win, s)
		return win
	}

	win := make(BarSlice, size)
	copy(win, s[length-size:])
	return win
}
