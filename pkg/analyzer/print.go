package analyzer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/stocklens/stocklens/pkg/signal"
	"github.com/stocklens/stocklens/pkg/style"
	"github.com/stocklens/stocklens/pkg/types"
)

// tailRows is how many bars the terminal table shows.
const tailRows = 10

// Texts shown under the sentiment section and at the page bottom.
const (
	SentimentNote = "Note: Replace this with real news sentiment API for accurate sentiment."
	Disclaimer    = "📘 This is an educational tool. No financial advice is provided."
)

// Print writes the session report to the terminal.
func (r *Report) Print() {
	color.Green("%s ANALYSIS REPORT (%s %s, source %s)", r.Symbol, r.Period, r.Interval, r.Source)
	color.Green("===============================================")

	r.PrintTable(os.Stdout)

	last := r.LastBar()
	log.Infof("BARS: %d, %s to %s",
		r.Bars.Len(),
		r.Bars.First().StartTime.Format("2006-01-02"),
		last.StartTime.Format("2006-01-02"))
	log.Infof("LAST CLOSE: %s", types.USD.FormatMoneyFloat64(last.Close))

	if sma, ok := r.SMA.Last(); ok {
		log.Infof("SMA(%d): %s", r.Windows.SMA, types.USD.FormatMoneyFloat64(sma))
	}

	if rsi, ok := r.RSI.Last(); ok {
		log.Infof("RSI(%d): %.2f", r.Windows.RSI, rsi)
	}

	if line, sig, ok := r.MACD.Last(); ok {
		log.Infof("MACD(%d,%d,%d): %+.4f SIGNAL: %+.4f", r.Windows.MACDFast, r.Windows.MACDSlow, r.Windows.MACDSignal, line, sig)
		if r.MACDCross != "" {
			log.Infof("MACD CROSS: %s", strings.ToUpper(r.MACDCross))
		}
	}

	if obv, ok := r.OBV.Last(); ok {
		log.Infof("OBV: %s", types.Shares.FormatMoneyFloat64(obv))
	}

	log.Infof("TREND SLOPE: %+.4f PER BAR", r.TrendSlope)

	for _, warning := range r.Warnings {
		style.WarnColor.Println(warning)
	}

	style.ActionColor(r.Advice.Action).Println(r.Advice.Action.Banner())
	if r.Advice.Action != signal.ActionInsufficientData {
		log.Infof("CLOSE %s vs SMA %s, DIFF %+.2f, BAND ±%.2f",
			types.USD.FormatMoneyFloat64(r.Advice.Close),
			types.USD.FormatMoneyFloat64(r.Advice.SMA),
			r.Advice.Diff,
			r.Advice.Threshold)
	}

	style.SentimentColor(r.Sentiment.Label).Printf("SENTIMENT (%s): %s %s (score %+.2f)\n",
		r.Symbol, r.Sentiment.Label.Title(), r.Sentiment.Label.Emoji(), r.Sentiment.Score)
	style.CaptionColor.Println(SentimentNote)
}

// PrintTable writes the last rows of the indicator frame as a table.
func (r *Report) PrintTable(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(*style.NewDefaultTableStyle())
	t.AppendHeader(table.Row{
		"date",
		"close",
		fmt.Sprintf("sma(%d)", r.Windows.SMA),
		fmt.Sprintf("rsi(%d)", r.Windows.RSI),
		"macd",
		"signal",
		"obv",
	})

	start := r.Bars.Len() - tailRows
	if start < 0 {
		start = 0
	}

	for i := start; i < r.Bars.Len(); i++ {
		bar := r.Bars[i]

		macdCell, signalCell := "-", "-"
		if line, sig, ok := r.MACD.At(i); ok {
			macdCell = fmt.Sprintf("%+.4f", line)
			signalCell = fmt.Sprintf("%+.4f", sig)
		}

		t.AppendRow(table.Row{
			bar.StartTime.Format("2006-01-02"),
			types.USD.FormatMoneyFloat64(bar.Close),
			seriesCell(r.SMA, i, func(v float64) string { return types.USD.FormatMoneyFloat64(v) }),
			seriesCell(r.RSI, i, func(v float64) string { return fmt.Sprintf("%.2f", v) }),
			macdCell,
			signalCell,
			seriesCell(r.OBV, i, func(v float64) string { return types.Shares.FormatMoneyFloat64(v) }),
		})
	}

	t.Render()
}

func seriesCell(s *Series, i int, format func(float64) string) string {
	if v, ok := s.At(i); ok {
		return format(v)
	}

	return "-"
}
