package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/stocklens/stocklens/pkg/analyzer"
	"github.com/stocklens/stocklens/pkg/datasource"
)

var SessionsTotalMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "stocklens_sessions_total",
		Help: "analysis sessions by suggested action",
	}, []string{"source", "action"})

var SessionErrorsTotalMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "stocklens_session_errors_total",
		Help: "failed analysis sessions by reason",
	}, []string{"source", "reason"})

var SessionDurationMetrics = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "stocklens_session_duration_seconds",
		Help:    "analysis session duration",
		Buckets: prometheus.DefBuckets,
	}, []string{"source"})

var SessionBarsMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "stocklens_session_bars",
		Help: "bars fetched by the last session of the symbol",
	}, []string{"source", "symbol"})

var LastClosePriceMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "stocklens_last_close_price",
		Help: "last closing price seen for the symbol",
	}, []string{"source", "symbol"})

func init() {
	prometheus.MustRegister(
		SessionsTotalMetrics,
		SessionErrorsTotalMetrics,
		SessionDurationMetrics,
		SessionBarsMetrics,
		LastClosePriceMetrics,
	)
}

// ObserveSession records one finished analysis session.
func ObserveSession(report *analyzer.Report, elapsed time.Duration) {
	SessionsTotalMetrics.WithLabelValues(report.Source, string(report.Advice.Action)).Inc()
	SessionDurationMetrics.WithLabelValues(report.Source).Observe(elapsed.Seconds())
	SessionBarsMetrics.WithLabelValues(report.Source, report.Symbol).Set(float64(report.Bars.Len()))
	LastClosePriceMetrics.WithLabelValues(report.Source, report.Symbol).Set(report.LastClose())
}

// ObserveSessionError records one failed session.
func ObserveSessionError(source string, err error) {
	reason := "query"
	if errors.Is(err, datasource.ErrNoData) {
		reason = "no_data"
	}

	SessionErrorsTotalMetrics.WithLabelValues(source, reason).Inc()
}
