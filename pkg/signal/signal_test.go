package signal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		close float64
		sma   float64
		smaOK bool
		want  Action
	}{
		{name: "well above the band", close: 110, sma: 100, smaOK: true, want: ActionBuy},
		{name: "well below the band", close: 90, sma: 100, smaOK: true, want: ActionSell},
		{name: "inside the band", close: 100.5, sma: 100, smaOK: true, want: ActionHold},
		{name: "exactly on the upper band", close: 101, sma: 100, smaOK: true, want: ActionHold},
		{name: "exactly on the lower band", close: 99, sma: 100, smaOK: true, want: ActionHold},
		{name: "just past the upper band", close: 101.01, sma: 100, smaOK: true, want: ActionBuy},
		{name: "sma undefined", close: 123, sma: 0, smaOK: false, want: ActionInsufficientData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advice := Evaluate(tt.close, tt.sma, tt.smaOK)
			assert.Equal(t, tt.want, advice.Action)
		})
	}
}

func TestEvaluateAdviceFields(t *testing.T) {
	Delta := 0.000001

	advice := Evaluate(110, 100, true)
	assert.InDelta(t, 10.0, advice.Diff, Delta)
	assert.InDelta(t, 1.0, advice.Threshold, Delta)
	assert.InDelta(t, 110.0, advice.Close, Delta)
	assert.InDelta(t, 100.0, advice.SMA, Delta)

	advice = Evaluate(50, 0, false)
	assert.Equal(t, ActionInsufficientData, advice.Action)
	assert.Equal(t, 50.0, advice.Close)
	assert.Equal(t, 0.0, advice.Threshold)
}

func TestAdviceJSON(t *testing.T) {
	advice := Evaluate(110, 100, true)

	out, err := json.Marshal(advice)
	assert.NoError(t, err)
	assert.Contains(t, string(out), `"action":"BUY"`)

	var back Advice
	assert.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, advice, back)
}

func TestActionStyling(t *testing.T) {
	assert.Equal(t, "green", ActionBuy.Color())
	assert.Equal(t, "red", ActionSell.Color())
	assert.Equal(t, "gray", ActionHold.Color())
	assert.Equal(t, "#f0f0f0", ActionHold.Background())
}
