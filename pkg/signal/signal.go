package signal

// Action is the advice the threshold rule produces for a symbol.
type Action string

const (
	ActionBuy              = Action("BUY")
	ActionSell             = Action("SELL")
	ActionHold             = Action("HOLD")
	ActionInsufficientData = Action("INSUFFICIENT_DATA")
)

// BandRatio is the tolerance band around the moving average. A close
// within one percent of the average reads as noise, not as a signal.
const BandRatio = 0.01

// Color returns the text color the action is rendered with.
func (a Action) Color() string {
	switch a {
	case ActionBuy:
		return "green"
	case ActionSell:
		return "red"
	case ActionInsufficientData:
		return "darkorange"
	}

	return "gray"
}

// Background returns the panel background for the action.
func (a Action) Background() string {
	switch a {
	case ActionBuy:
		return "#e6ffe6"
	case ActionSell:
		return "#ffe6e6"
	case ActionInsufficientData:
		return "#fff8e1"
	}

	return "#f0f0f0"
}

func (a Action) Emoji() string {
	switch a {
	case ActionBuy:
		return "💹"
	case ActionSell:
		return "🔻"
	case ActionInsufficientData:
		return "⚠️"
	}

	return "🤝"
}

// Banner is the headline of the suggestion card.
func (a Action) Banner() string {
	if a == ActionInsufficientData {
		return "Not enough data for suggestion"
	}

	return a.Emoji() + " " + string(a)
}

// Advice carries the action together with the inputs that produced it,
// so the presentation layer can show the arithmetic.
type Advice struct {
	Action    Action  `json:"action"`
	Close     float64 `json:"close"`
	SMA       float64 `json:"sma"`
	Diff      float64 `json:"diff"`
	Threshold float64 `json:"threshold"`
}

// Evaluate compares the latest close against the latest moving average.
// smaOK is false while the average is still undefined, the advice is
// then INSUFFICIENT_DATA and only the close is filled in.
func Evaluate(closePrice, sma float64, smaOK bool) Advice {
	if !smaOK {
		return Advice{
			Action: ActionInsufficientData,
			Close:  closePrice,
		}
	}

	advice := Advice{
		Close:     closePrice,
		SMA:       sma,
		Diff:      closePrice - sma,
		Threshold: BandRatio * sma,
	}

	switch {
	case advice.Diff > advice.Threshold:
		advice.Action = ActionBuy
	case advice.Diff < -advice.Threshold:
		advice.Action = ActionSell
	default:
		advice.Action = ActionHold
	}

	return advice
}
