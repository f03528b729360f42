package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInterval(t *testing.T) {
	for _, s := range []string{"1d", "1wk", "1mo"} {
		interval, err := ParseInterval(s)
		assert.NoError(t, err)
		assert.Equal(t, s, interval.String())
	}

	_, err := ParseInterval("5m")
	assert.Error(t, err)
}

func TestIntervalDays(t *testing.T) {
	assert.Equal(t, 1, Interval1d.Days())
	assert.Equal(t, 7, Interval1wk.Days())
	assert.Equal(t, 30, Interval1mo.Days())
}

func TestIntervalUnmarshalJSON(t *testing.T) {
	type A struct {
		Interval Interval `json:"interval"`
	}

	var a A
	err := json.Unmarshal([]byte(`{"interval":"1wk"}`), &a)
	assert.NoError(t, err)
	assert.Equal(t, Interval1wk, a.Interval)

	err = json.Unmarshal([]byte(`{"interval":"2d"}`), &a)
	assert.Error(t, err)
}

func TestParsePeriod(t *testing.T) {
	for _, s := range []string{"1mo", "3mo", "6mo", "1y", "2y"} {
		period, err := ParsePeriod(s)
		assert.NoError(t, err)
		assert.Equal(t, s, period.String())
	}

	_, err := ParsePeriod("10y")
	assert.Error(t, err)
}

func TestPeriodDays(t *testing.T) {
	assert.Equal(t, 30, Period1mo.Days())
	assert.Equal(t, 730, Period2y.Days())
}

func TestIntervalWindowString(t *testing.T) {
	iw := IntervalWindow{Interval: Interval1d, Window: 20}
	assert.Equal(t, "1d (20)", iw.String())
}
