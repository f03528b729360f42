package metrics

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"

	"github.com/stocklens/stocklens/pkg/analyzer"
	"github.com/stocklens/stocklens/pkg/datasource"
	"github.com/stocklens/stocklens/pkg/signal"
	"github.com/stocklens/stocklens/pkg/types"
)

func TestObserveSession(t *testing.T) {
	report := &analyzer.Report{
		Symbol: "AAPL",
		Source: "stub",
		Bars: types.BarSlice{
			{Close: 100.0, Volume: 1000.0},
			{Close: 104.0, Volume: 1200.0},
		},
		Advice: signal.Advice{Action: signal.ActionBuy},
	}

	ObserveSession(report, 1500*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(SessionsTotalMetrics.WithLabelValues("stub", "BUY")))
	assert.Equal(t, 2.0, testutil.ToFloat64(SessionBarsMetrics.WithLabelValues("stub", "AAPL")))
	assert.Equal(t, 104.0, testutil.ToFloat64(LastClosePriceMetrics.WithLabelValues("stub", "AAPL")))

	count, sum := histogramSample(t, SessionDurationMetrics.WithLabelValues("stub"))
	assert.Equal(t, uint64(1), count)
	assert.InDelta(t, 1.5, sum, 0.001)
}

// Helper function: read the sample of a histogram metric
func histogramSample(t *testing.T, metric prometheus.Observer) (uint64, float64) {
	ch := make(chan prometheus.Metric, 1)
	metric.(prometheus.Histogram).Collect(ch)

	m := <-ch
	pb := &dto.Metric{}

	err := m.Write(pb)
	assert.NoError(t, err)

	return pb.GetHistogram().GetSampleCount(), pb.GetHistogram().GetSampleSum()
}

func TestObserveSessionError(t *testing.T) {
	ObserveSessionError("stub", datasource.ErrNoData)
	assert.Equal(t, 1.0, testutil.ToFloat64(SessionErrorsTotalMetrics.WithLabelValues("stub", "no_data")))

	ObserveSessionError("stub", errors.New("connection reset"))
	assert.Equal(t, 1.0, testutil.ToFloat64(SessionErrorsTotalMetrics.WithLabelValues("stub", "query")))
}
