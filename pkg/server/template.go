package server

import (
	"html/template"
	"net/url"

	"github.com/stocklens/stocklens/pkg/analyzer"
	"github.com/stocklens/stocklens/pkg/chart"
	"github.com/stocklens/stocklens/pkg/types"
)

// DashboardData feeds the dashboard template. Exactly one of Report
// and Error is set after an analysis run.
type DashboardData struct {
	Symbol    string
	Period    types.Period
	Interval  types.Interval
	Periods   []types.Period
	Intervals []types.Interval

	Report *analyzer.Report
	Error  string
}

// ChartURL builds the panel image route for the current selection.
func (d DashboardData) ChartURL(kind string) string {
	v := url.Values{}
	v.Set("symbol", d.Symbol)
	v.Set("period", string(d.Period))
	v.Set("interval", string(d.Interval))

	return "/charts/" + kind + "?" + v.Encode()
}

// Heading returns the section title of a panel.
func (d DashboardData) Heading(kind string) string {
	return chart.Kind(kind).Heading()
}

// Caption returns the indicator explainer of a panel.
func (d DashboardData) Caption(kind string) string {
	return chart.Kind(kind).Caption()
}

func (d DashboardData) SentimentNote() string {
	return analyzer.SentimentNote
}

func (d DashboardData) Disclaimer() string {
	return analyzer.Disclaimer
}

var dashboardTemplate = template.Must(template.New("dashboard").Parse(dashboardHTML))

const dashboardHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Stock Analyzer</title>
<style>
  body { font-family: sans-serif; margin: 0; display: flex; }
  .sidebar { width: 260px; background: #f5f5f5; padding: 1.5em; min-height: 100vh; }
  .main { flex: 1; padding: 1.5em 2em; }
  .columns { display: flex; gap: 2em; }
  .column { flex: 1; min-width: 0; }
  .panel img { width: 100%; }
  .card { padding: 1em; border-radius: 10px; text-align: center; }
  .card.blink { animation: blink 1s infinite; }
  @keyframes blink { 50% { opacity: 0.3; } }
  .info { background: #e8f4fd; border-radius: 6px; padding: 0.8em; margin: 0.8em 0; font-size: 0.9em; }
  .warning { background: #fff3cd; border-radius: 6px; padding: 0.8em; margin: 0.8em 0; }
  .error { background: #ffe6e6; border-radius: 6px; padding: 0.8em; margin: 0.8em 0; color: #b00000; }
  .caption { color: #666; font-size: 0.8em; }
  hr { border: 0; border-top: 1px solid #ddd; margin: 1.5em 0; }
  label { display: block; margin-top: 1em; font-size: 0.9em; }
  input, select { width: 100%; padding: 0.4em; margin-top: 0.3em; box-sizing: border-box; }
  button { margin-top: 1.2em; padding: 0.5em 1.2em; }
</style>
</head>
<body>
<div class="sidebar">
  <h3>Settings</h3>
  <form method="GET" action="/">
    <label>Enter stock ticker (e.g. AAPL, MSFT):
      <input type="text" name="symbol" value="{{ .Symbol }}">
    </label>
    <label>Select period
      <select name="period">
        {{ range .Periods }}<option value="{{ . }}"{{ if eq . $.Period }} selected{{ end }}>{{ . }}</option>{{ end }}
      </select>
    </label>
    <label>Data interval
      <select name="interval">
        {{ range .Intervals }}<option value="{{ . }}"{{ if eq . $.Interval }} selected{{ end }}>{{ . }}</option>{{ end }}
      </select>
    </label>
    <button type="submit">Analyze</button>
  </form>
</div>
<div class="main">
  <h1>📈 Stock Market Analyzer AI Agent</h1>
{{ if .Error }}
  <div class="error">{{ .Error }}</div>
{{ else if .Report }}
{{ range .Report.Warnings }}
  <div class="warning">{{ . }}</div>
{{ end }}
  <div class="columns">
    <div class="column">
      <h3>{{ $.Heading "price" }}</h3>
      <div class="panel"><img src="{{ $.ChartURL "price" }}" alt="closing price and moving average"></div>
{{ with .Report.Advice }}
{{ if eq .Action "BUY" }}
      <div class="card blink" style="background-color: #e6ffe6; border: 2px solid green;">
        <h2 style="color: green; font-weight: bold;">💹 BUY</h2>
      </div>
{{ else if eq .Action "SELL" }}
      <div class="card" style="background-color: #ffe6e6; border: 2px solid red;">
        <h2 style="color: red; font-weight: bold;">🔻 SELL</h2>
      </div>
{{ else if eq .Action "INSUFFICIENT_DATA" }}
      <div class="card" style="background-color: #f0f0f0;">
        <h2 style="color: orange; font-weight: bold;">Not enough data for suggestion</h2>
      </div>
{{ else }}
      <div class="card" style="background-color: #f0f0f0;">
        <h2 style="color: gray; font-weight: bold;">🤝 HOLD</h2>
      </div>
{{ end }}
{{ end }}
      <div class="info">{{ $.Caption "price" }}</div>
    </div>
    <div class="column">
      <h3>{{ $.Heading "rsi" }}</h3>
      <div class="panel"><img src="{{ $.ChartURL "rsi" }}" alt="relative strength index"></div>
      <div class="info">{{ $.Caption "rsi" }}</div>

      <h3>{{ $.Heading "macd" }}</h3>
{{ if .Report.MACD }}
      <div class="panel"><img src="{{ $.ChartURL "macd" }}" alt="macd"></div>
{{ if eq .Report.MACDCross "bullish" }}
      <div class="info">📈 Bullish crossover on the latest bar.</div>
{{ else if eq .Report.MACDCross "bearish" }}
      <div class="info">📉 Bearish crossover on the latest bar.</div>
{{ end }}
      <div class="info">{{ $.Caption "macd" }}</div>
{{ else }}
      <div class="warning">MACD data not available or failed to compute.</div>
{{ end }}

      <h3>{{ $.Heading "obv" }}</h3>
{{ if .Report.OBV }}
      <div class="panel"><img src="{{ $.ChartURL "obv" }}" alt="on-balance volume"></div>
      <div class="info">{{ $.Caption "obv" }}</div>
{{ else }}
      <div class="warning">OBV data not available or failed to compute.</div>
{{ end }}
    </div>
  </div>
  <hr>
  <h3>📰 Sentiment Analysis (Ticker Name): {{ .Report.Sentiment.Label.Title }} {{ .Report.Sentiment.Label.Emoji }}</h3>
  <div class="caption">{{ .SentimentNote }}</div>
  <hr>
  <div class="caption">{{ .Disclaimer }}</div>
{{ end }}
</div>
</body>
</html>
`
