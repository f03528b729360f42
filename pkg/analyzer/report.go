package analyzer

import (
	"time"

	"github.com/stocklens/stocklens/pkg/sentiment"
	"github.com/stocklens/stocklens/pkg/signal"
	"github.com/stocklens/stocklens/pkg/types"
)

// Report is the outcome of one analysis session. Indicator series that
// could not be computed are nil, and anything skipped along the way is
// recorded in Warnings.
type Report struct {
	SessionID   string    `json:"sessionID"`
	GeneratedAt time.Time `json:"generatedAt"`

	Symbol   string         `json:"symbol"`
	Period   types.Period   `json:"period"`
	Interval types.Interval `json:"interval"`
	Source   string         `json:"source"`

	Windows Windows        `json:"windows"`
	Bars    types.BarSlice `json:"bars"`

	SMA  *Series     `json:"sma,omitempty"`
	RSI  *Series     `json:"rsi,omitempty"`
	MACD *MACDSeries `json:"macd,omitempty"`
	OBV  *Series     `json:"obv,omitempty"`

	// MACDCross labels a macd and signal line cross on the last closed
	// bar, CrossBullish, CrossBearish or empty.
	MACDCross string `json:"macdCross,omitempty"`

	// TrendSlope is the least squares slope of the closing prices,
	// in price units per bar.
	TrendSlope float64 `json:"trendSlope"`

	Advice    signal.Advice    `json:"advice"`
	Sentiment sentiment.Result `json:"sentiment"`

	Warnings []string `json:"warnings,omitempty"`
}

// LastBar returns the most recent bar of the session window.
func (r *Report) LastBar() types.Bar {
	return r.Bars.Last()
}

// LastClose returns the most recent closing price.
func (r *Report) LastClose() float64 {
	return r.Bars.Last().Close
}
