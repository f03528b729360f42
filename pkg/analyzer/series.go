package analyzer

import (
	"github.com/stocklens/stocklens/pkg/datatype/floats"
)

// Series holds indicator values aligned to the bar window they were
// computed from. Offset is the index of the first bar that has a value,
// so bar i maps to Values[i-Offset]. A nil Series means the indicator
// could not be computed for the window.
type Series struct {
	Offset int          `json:"offset"`
	Values floats.Slice `json:"values"`
}

func NewSeries(offset int, values floats.Slice) *Series {
	return &Series{Offset: offset, Values: values}
}

// At returns the value at bar index i and whether it is defined there.
func (s *Series) At(i int) (float64, bool) {
	if s == nil || i < s.Offset || i >= s.Offset+len(s.Values) {
		return 0.0, false
	}

	return s.Values[i-s.Offset], true
}

// Last returns the most recent value and whether the series has any.
func (s *Series) Last() (float64, bool) {
	if s == nil || len(s.Values) == 0 {
		return 0.0, false
	}

	return s.Values[len(s.Values)-1], true
}

func (s *Series) Len() int {
	if s == nil {
		return 0
	}

	return len(s.Values)
}

// MACDSeries holds the macd line, the signal line and the histogram.
// All three share one offset and one length.
type MACDSeries struct {
	Offset    int          `json:"offset"`
	Line      floats.Slice `json:"line"`
	Signal    floats.Slice `json:"signal"`
	Histogram floats.Slice `json:"histogram"`
}

func (m *MACDSeries) Len() int {
	if m == nil {
		return 0
	}

	return len(m.Line)
}

// At returns the line and signal values at bar index i.
func (m *MACDSeries) At(i int) (line, sig float64, ok bool) {
	if m == nil || i < m.Offset || i >= m.Offset+len(m.Line) {
		return 0.0, 0.0, false
	}

	return m.Line[i-m.Offset], m.Signal[i-m.Offset], true
}

// Last returns the most recent line and signal values.
func (m *MACDSeries) Last() (line, sig float64, ok bool) {
	if m == nil || len(m.Line) == 0 || len(m.Signal) == 0 {
		return 0.0, 0.0, false
	}

	return m.Line[len(m.Line)-1], m.Signal[len(m.Signal)-1], true
}

// Labels for a macd and signal line cross on the last closed bar.
const (
	CrossBullish = "bullish"
	CrossBearish = "bearish"
)

// Cross reports whether the macd line crossed the signal line on the
// last closed bar. Empty when nothing crossed there.
func (m *MACDSeries) Cross() string {
	if m == nil {
		return ""
	}

	if floats.CrossOver(m.Line, m.Signal) {
		return CrossBullish
	}

	if floats.CrossUnder(m.Line, m.Signal) {
		return CrossBearish
	}

	return ""
}
