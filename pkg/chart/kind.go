package chart

import (
	"strings"

	"github.com/pkg/errors"
)

// Kind selects one dashboard panel.
type Kind string

const (
	KindPrice = Kind("price")
	KindRSI   = Kind("rsi")
	KindMACD  = Kind("macd")
	KindOBV   = Kind("obv")
)

// Kinds returns all panels in dashboard order.
func Kinds() []Kind {
	return []Kind{KindPrice, KindRSI, KindMACD, KindOBV}
}

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindPrice, KindRSI, KindMACD, KindOBV:
		return k, nil
	}

	return "", errors.Errorf("unknown chart kind %q, valid kinds are price, rsi, macd and obv", s)
}

// Heading is the section title shown above the panel.
func (k Kind) Heading() string {
	switch k {
	case KindPrice:
		return "📊 Closing Price & 20-day SMA"
	case KindRSI:
		return "📈 Relative Strength Index (RSI)"
	case KindMACD:
		return "📉 MACD (Moving Average Convergence Divergence)"
	case KindOBV:
		return "📊 On-Balance Volume (OBV)"
	}

	return string(k)
}

// Caption is the short indicator explainer shown under the panel.
func (k Kind) Caption() string {
	switch k {
	case KindPrice:
		return "SMA20 is the average of the last 20 closing prices. It smooths short-term volatility."
	case KindRSI:
		return "RSI measures momentum. Above 70: overbought (possible SELL). Below 30: oversold (possible BUY)."
	case KindMACD:
		return "MACD helps spot trend reversals. MACD > Signal = potential BUY. MACD < Signal = potential SELL."
	case KindOBV:
		return "OBV measures buying and selling pressure using volume flow."
	}

	return ""
}
