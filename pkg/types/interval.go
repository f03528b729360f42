package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Interval is the sampling interval of a bar sequence.
type Interval string

var Interval1d = Interval("1d")
var Interval1wk = Interval("1wk")
var Interval1mo = Interval("1mo")

// SupportedIntervals maps an interval to its approximate length in days.
var SupportedIntervals = map[Interval]int{
	Interval1d:  1,
	Interval1wk: 7,
	Interval1mo: 30,
}

// AllIntervals lists the selectable intervals in menu order.
var AllIntervals = []Interval{Interval1d, Interval1wk, Interval1mo}

func (i Interval) Days() int {
	return SupportedIntervals[i]
}

func (i Interval) Duration() time.Duration {
	return time.Duration(i.Days()) * 24 * time.Hour
}

func (i Interval) String() string {
	return string(i)
}

func (i *Interval) UnmarshalJSON(b []byte) error {
	var a string
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}

	interval, err := ParseInterval(a)
	if err != nil {
		return err
	}

	*i = interval
	return nil
}

func ParseInterval(s string) (Interval, error) {
	interval := Interval(s)
	if _, ok := SupportedIntervals[interval]; !ok {
		return "", fmt.Errorf("unsupported interval: %s, valid intervals are: %s, %s, %s",
			s, Interval1d, Interval1wk, Interval1mo)
	}

	return interval, nil
}

// Period is the lookback range of a bar query.
type Period string

var Period1mo = Period("1mo")
var Period3mo = Period("3mo")
var Period6mo = Period("6mo")
var Period1y = Period("1y")
var Period2y = Period("2y")

// SupportedPeriods maps a period to its lookback length in days.
var SupportedPeriods = map[Period]int{
	Period1mo: 30,
	Period3mo: 91,
	Period6mo: 182,
	Period1y:  365,
	Period2y:  730,
}

// AllPeriods lists the selectable periods in menu order.
var AllPeriods = []Period{Period1mo, Period3mo, Period6mo, Period1y, Period2y}

func (p Period) Days() int {
	return SupportedPeriods[p]
}

func (p Period) Duration() time.Duration {
	return time.Duration(p.Days()) * 24 * time.Hour
}

func (p Period) String() string {
	return string(p)
}

func (p *Period) UnmarshalJSON(b []byte) error {
	var a string
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}

	period, err := ParsePeriod(a)
	if err != nil {
		return err
	}

	*p = period
	return nil
}

func ParsePeriod(s string) (Period, error) {
	period := Period(s)
	if _, ok := SupportedPeriods[period]; !ok {
		return "", fmt.Errorf("unsupported period: %s, valid periods are: %s, %s, %s, %s, %s",
			s, Period1mo, Period3mo, Period6mo, Period1y, Period2y)
	}

	return period, nil
}

// IntervalWindow is used by the indicators
type IntervalWindow struct {
	// The interval of the bars
	Interval Interval `json:"interval"`

	// The window size of the indicator (SMA and friends)
	Window int `json:"window"`
}

func (iw IntervalWindow) String() string {
	return fmt.Sprintf("%s (%d)", iw.Interval, iw.Window)
}
