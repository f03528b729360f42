package style

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/stocklens/stocklens/pkg/sentiment"
	"github.com/stocklens/stocklens/pkg/signal"
)

func TestNewDefaultTableStyle(t *testing.T) {
	style := NewDefaultTableStyle()
	assert.NotNil(t, style)
	assert.Equal(t, "StyleRounded", style.Name)
}

func TestActionColor(t *testing.T) {
	old := color.NoColor
	color.NoColor = false
	defer func() {
		color.NoColor = old
	}()

	assert.Contains(t, ActionColor(signal.ActionBuy).Sprint("BUY"), "\x1b[32")
	assert.Contains(t, ActionColor(signal.ActionSell).Sprint("SELL"), "\x1b[31")
	assert.Contains(t, ActionColor(signal.ActionHold).Sprint("HOLD"), "\x1b[90")
	assert.Contains(t, ActionColor(signal.ActionInsufficientData).Sprint("?"), "\x1b[93")
}

func TestSentimentColor(t *testing.T) {
	old := color.NoColor
	color.NoColor = false
	defer func() {
		color.NoColor = old
	}()

	assert.Contains(t, SentimentColor(sentiment.LabelPositive).Sprint("+"), "\x1b[32")
	assert.Contains(t, SentimentColor(sentiment.LabelNegative).Sprint("-"), "\x1b[31")
	assert.Contains(t, SentimentColor(sentiment.LabelNeutral).Sprint("0"), "\x1b[90")
}
