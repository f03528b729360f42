package style

import (
	"github.com/fatih/color"

	"github.com/stocklens/stocklens/pkg/sentiment"
	"github.com/stocklens/stocklens/pkg/signal"
)

var WarnColor = color.New(color.FgYellow)

// CaptionColor renders the educational notes dimmed, like the
// dashboard captions.
var CaptionColor = color.New(color.FgHiBlack)

// ActionColor returns the terminal color of a suggestion.
func ActionColor(action signal.Action) *color.Color {
	switch action {
	case signal.ActionBuy:
		return color.New(color.FgGreen, color.Bold)
	case signal.ActionSell:
		return color.New(color.FgRed, color.Bold)
	case signal.ActionInsufficientData:
		return color.New(color.FgHiYellow)
	}

	return color.New(color.FgHiBlack, color.Bold)
}

// SentimentColor returns the terminal color of a sentiment label.
func SentimentColor(label sentiment.Label) *color.Color {
	switch label {
	case sentiment.LabelPositive:
		return color.New(color.FgGreen)
	case sentiment.LabelNegative:
		return color.New(color.FgRed)
	}

	return color.New(color.FgHiBlack)
}
