package chart

import (
	"bytes"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/stocklens/stocklens/pkg/datatype/floats"
	"github.com/stocklens/stocklens/pkg/types"
)

// Canvas is a figure holding one dashboard panel. It embeds the
// underlying chart so axes and size stay adjustable after plotting.
type Canvas struct {
	chart.Chart
	Interval types.Interval
}

func NewCanvas(title string, interval types.Interval) *Canvas {
	out := &Canvas{
		Chart: chart.Chart{
			Title:  title,
			Width:  1000,
			Height: 400,
			XAxis: chart.XAxis{
				ValueFormatter: chart.TimeDateValueFormatter,
			},
		},
		Interval: interval,
	}
	out.Chart.Elements = []chart.Renderable{
		chart.LegendLeft(&out.Chart),
	}

	return out
}

// Plot appends a line series aligned to the given timeline. Timeline
// and values must have the same length.
func (canvas *Canvas) Plot(tag string, timeline []time.Time, values floats.Slice, style chart.Style) {
	if len(values) == 0 || len(timeline) != len(values) {
		return
	}

	canvas.Series = append(canvas.Series, chart.TimeSeries{
		Name:    tag,
		XValues: timeline,
		YValues: values,
		Style:   style,
	})
}

// PlotGuide draws a horizontal guide line across the whole timeline.
func (canvas *Canvas) PlotGuide(tag string, level float64, timeline []time.Time, style chart.Style) {
	if len(timeline) == 0 {
		return
	}

	values := make(floats.Slice, len(timeline))
	for i := range values {
		values[i] = level
	}

	canvas.Plot(tag, timeline, values, style)
}

// PlotHistogram draws one vertical bar from zero per value.
func (canvas *Canvas) PlotHistogram(tag string, timeline []time.Time, values floats.Slice, style chart.Style) {
	if len(values) == 0 || len(timeline) != len(values) {
		return
	}

	canvas.Series = append(canvas.Series, chart.HistogramSeries{
		Name:  tag,
		Style: style,
		InnerSeries: chart.TimeSeries{
			Name:    tag,
			XValues: timeline,
			YValues: values,
		},
	})
}

// RenderPNG renders the canvas into a PNG image.
func (canvas *Canvas) RenderPNG() ([]byte, error) {
	var buffer bytes.Buffer
	if err := canvas.Render(chart.PNG, &buffer); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}
