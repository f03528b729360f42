package analyzer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/stocklens/stocklens/pkg/datasource"
	"github.com/stocklens/stocklens/pkg/indicator"
	"github.com/stocklens/stocklens/pkg/sentiment"
	"github.com/stocklens/stocklens/pkg/signal"
	"github.com/stocklens/stocklens/pkg/types"
)

var log = logrus.WithFields(logrus.Fields{
	"component": "analyzer",
})

// Warning messages recorded on the report when part of the indicator
// set is skipped. The session itself still succeeds.
const (
	WarnMACDUnavailable = "MACD data not available or failed to compute."
	WarnOBVUnavailable  = "OBV data not available or failed to compute."
	WarnOBVColumns      = "Required columns for OBV calculation missing."
)

// Windows holds the indicator window parameters of one session.
type Windows struct {
	SMA        int `json:"sma" yaml:"sma"`
	RSI        int `json:"rsi" yaml:"rsi"`
	MACDFast   int `json:"macdFast" yaml:"macdFast"`
	MACDSlow   int `json:"macdSlow" yaml:"macdSlow"`
	MACDSignal int `json:"macdSignal" yaml:"macdSignal"`
}

// DefaultWindows returns the standard parameter set, a 20 bar moving
// average, a 14 bar RSI and 12/26/9 MACD.
func DefaultWindows() Windows {
	return Windows{
		SMA:        20,
		RSI:        14,
		MACDFast:   12,
		MACDSlow:   26,
		MACDSignal: 9,
	}
}

func (w Windows) Validate() error {
	if w.SMA < 1 {
		return errors.New("sma window must be at least 1")
	}

	if w.RSI < 1 {
		return errors.New("rsi window must be at least 1")
	}

	if w.MACDFast < 1 || w.MACDSlow <= w.MACDFast {
		return errors.New("macd windows must satisfy 0 < fast < slow")
	}

	if w.MACDSignal < 1 {
		return errors.New("macd signal window must be at least 1")
	}

	return nil
}

// Request selects what to analyze. An empty period or interval falls
// back to one month of daily bars.
type Request struct {
	Symbol   string         `json:"symbol"`
	Period   types.Period   `json:"period"`
	Interval types.Interval `json:"interval"`
}

// Analyzer runs the session pipeline for one symbol: fetch the bar
// window, compute the indicator set, derive the trade suggestion and
// score the ticker sentiment. It holds no session state, one value can
// serve concurrent sessions.
type Analyzer struct {
	source    datasource.Source
	tech      indicator.TechLib
	sentiment sentiment.Analyzer
	windows   Windows
}

func New(source datasource.Source, tech indicator.TechLib, senti sentiment.Analyzer, windows Windows) *Analyzer {
	return &Analyzer{
		source:    source,
		tech:      tech,
		sentiment: senti,
		windows:   windows,
	}
}

func (a *Analyzer) Windows() Windows {
	return a.windows
}

// SourceName identifies the provider behind this analyzer.
func (a *Analyzer) SourceName() string {
	return a.source.Name()
}

// Analyze runs one full session and returns its report. A window with
// no bars at all is a hard error, datasource.ErrNoData. Indicators that
// can not be computed over the window degrade to warnings instead.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*Report, error) {
	symbol := strings.ToUpper(strings.TrimSpace(req.Symbol))
	if symbol == "" {
		return nil, errors.New("symbol is required")
	}

	period := req.Period
	if period == "" {
		period = types.Period1mo
	}

	if _, ok := types.SupportedPeriods[period]; !ok {
		return nil, errors.Errorf("unsupported period %q", period)
	}

	interval := req.Interval
	if interval == "" {
		interval = types.Interval1d
	}

	if _, ok := types.SupportedIntervals[interval]; !ok {
		return nil, errors.Errorf("unsupported interval %q", interval)
	}

	if err := a.windows.Validate(); err != nil {
		return nil, err
	}

	bars, err := a.source.QueryBars(ctx, symbol, period, interval)
	if err != nil {
		return nil, err
	}

	if len(bars) == 0 {
		return nil, datasource.ErrNoData
	}

	report := &Report{
		SessionID:   uuid.New().String(),
		GeneratedAt: time.Now(),
		Symbol:      symbol,
		Period:      period,
		Interval:    interval,
		Source:      a.source.Name(),
		Windows:     a.windows,
		Bars:        bars,
	}

	closes := bars.Closes()

	sma := &indicator.SMA{
		IntervalWindow: types.IntervalWindow{Interval: interval, Window: a.windows.SMA},
	}
	sma.CalculateAndUpdate(bars)
	if sma.Length() > 0 {
		report.SMA = NewSeries(sma.Offset(), sma.Values)
	}

	if values, ok := a.tech.RSI(closes, a.windows.RSI); ok {
		report.RSI = NewSeries(indicator.RSILookback(a.windows.RSI), values)
	}

	line, sig, hist, ok := a.tech.MACD(closes, a.windows.MACDFast, a.windows.MACDSlow, a.windows.MACDSignal)
	if ok {
		report.MACD = &MACDSeries{
			Offset:    indicator.MACDLookback(a.windows.MACDSlow, a.windows.MACDSignal),
			Line:      line,
			Signal:    sig,
			Histogram: hist,
		}
		report.MACDCross = report.MACD.Cross()
	} else {
		warn(report, WarnMACDUnavailable)
	}

	if !bars.HasVolume() {
		warn(report, WarnOBVColumns)
	} else {
		obv := &indicator.OBV{
			IntervalWindow: types.IntervalWindow{Interval: interval},
		}
		if err := obv.CalculateAndUpdate(bars); err != nil {
			warn(report, fmt.Sprintf("OBV could not be computed: %v", err))
		} else {
			report.OBV = NewSeries(0, obv.Values)
		}
	}

	smaLast, smaOK := report.SMA.Last()
	report.Advice = signal.Evaluate(bars.Last().Close, smaLast, smaOK)
	report.Sentiment = sentiment.Analyze(a.sentiment, symbol)
	report.TrendSlope = TrendSlope(closes)

	log.WithFields(logrus.Fields{
		"session":  report.SessionID,
		"symbol":   symbol,
		"bars":     len(bars),
		"action":   report.Advice.Action,
		"warnings": len(report.Warnings),
	}).Infof("analyzed %s over %s of %s bars", symbol, period, interval)

	return report, nil
}

func warn(report *Report, msg string) {
	log.Warn(msg)
	report.Warnings = append(report.Warnings, msg)
}
