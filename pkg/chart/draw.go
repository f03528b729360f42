package chart

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/stocklens/stocklens/pkg/analyzer"
)

// panel palette
var (
	ColorClose      = drawing.Color{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	ColorSMA        = drawing.Color{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
	ColorRSI        = drawing.Color{R: 0x80, G: 0x00, B: 0x80, A: 0xff}
	ColorOverbought = drawing.Color{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	ColorOversold   = drawing.Color{R: 0x00, G: 0x80, B: 0x00, A: 0xff}
	ColorMACDLine   = drawing.Color{R: 0x00, G: 0x00, B: 0xff, A: 0xff}
	ColorMACDSignal = drawing.Color{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	ColorHistogram  = drawing.Color{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	ColorOBV        = drawing.Color{R: 0xff, G: 0xa5, B: 0x00, A: 0xff}
)

var dashed = []float64{5.0, 5.0}

// Draw renders the panel of the given kind. It returns nil when the
// report has no data for it.
func Draw(kind Kind, report *analyzer.Report) *Canvas {
	switch kind {
	case KindPrice:
		return DrawPrice(report)
	case KindRSI:
		return DrawRSI(report)
	case KindMACD:
		return DrawMACD(report)
	case KindOBV:
		return DrawOBV(report)
	}

	return nil
}

// DrawPrice plots the closing prices with the moving average overlay.
func DrawPrice(report *analyzer.Report) *Canvas {
	canvas := NewCanvas(fmt.Sprintf("%s Close & SMA%d", report.Symbol, report.Windows.SMA), report.Interval)
	canvas.YAxis.Name = "Price (USD)"

	timeline := report.Bars.StartTimes()
	canvas.Plot("Close Price", timeline, report.Bars.Closes(), chart.Style{
		StrokeColor: ColorClose,
		StrokeWidth: 2.0,
	})

	if report.SMA != nil {
		canvas.Plot(fmt.Sprintf("%d-Day SMA", report.Windows.SMA), timeline[report.SMA.Offset:], report.SMA.Values, chart.Style{
			StrokeColor:     ColorSMA,
			StrokeWidth:     2.0,
			StrokeDashArray: dashed,
		})
	}

	return canvas
}

// DrawRSI plots the RSI with the overbought and oversold guides. The
// guides are drawn even when the window is too short for the RSI
// itself.
func DrawRSI(report *analyzer.Report) *Canvas {
	canvas := NewCanvas(fmt.Sprintf("%s RSI%d", report.Symbol, report.Windows.RSI), report.Interval)
	canvas.Height = 250
	canvas.YAxis.Range = &chart.ContinuousRange{Min: 0.0, Max: 100.0}

	timeline := report.Bars.StartTimes()
	if report.RSI != nil {
		canvas.Plot("RSI", timeline[report.RSI.Offset:], report.RSI.Values, chart.Style{
			StrokeColor: ColorRSI,
			StrokeWidth: 2.0,
		})
	}

	canvas.PlotGuide("Overbought", 70.0, timeline, chart.Style{
		StrokeColor:     ColorOverbought,
		StrokeWidth:     1.0,
		StrokeDashArray: dashed,
	})
	canvas.PlotGuide("Oversold", 30.0, timeline, chart.Style{
		StrokeColor:     ColorOversold,
		StrokeWidth:     1.0,
		StrokeDashArray: dashed,
	})

	return canvas
}

// DrawMACD plots the macd line, the signal line and the histogram
// bars. The histogram goes first so the lines stay on top.
func DrawMACD(report *analyzer.Report) *Canvas {
	if report.MACD == nil {
		return nil
	}

	w := report.Windows
	canvas := NewCanvas(fmt.Sprintf("%s MACD(%d,%d,%d)", report.Symbol, w.MACDFast, w.MACDSlow, w.MACDSignal), report.Interval)
	canvas.Height = 300

	timeline := report.Bars.StartTimes()[report.MACD.Offset:]
	canvas.PlotHistogram("Histogram", timeline, report.MACD.Histogram, chart.Style{
		StrokeColor: ColorHistogram.WithAlpha(160),
		StrokeWidth: 2.0,
	})
	canvas.Plot("MACD Line", timeline, report.MACD.Line, chart.Style{
		StrokeColor: ColorMACDLine,
		StrokeWidth: 2.0,
	})
	canvas.Plot("Signal Line", timeline, report.MACD.Signal, chart.Style{
		StrokeColor: ColorMACDSignal,
		StrokeWidth: 2.0,
	})

	return canvas
}

// DrawOBV plots the on-balance volume accumulation.
func DrawOBV(report *analyzer.Report) *Canvas {
	if report.OBV == nil {
		return nil
	}

	canvas := NewCanvas(fmt.Sprintf("%s OBV", report.Symbol), report.Interval)
	canvas.Height = 250

	canvas.Plot("OBV", report.Bars.StartTimes(), report.OBV.Values, chart.Style{
		StrokeColor: ColorOBV,
		StrokeWidth: 2.0,
	})

	return canvas
}
