package sentiment

// Label buckets a polarity score.
type Label string

const (
	LabelPositive = Label("POSITIVE")
	LabelNegative = Label("NEGATIVE")
	LabelNeutral  = Label("NEUTRAL")
)

// Scores above the band are positive, below the negated band negative,
// everything in between neutral.
const polarityBand = 0.1

// Analyzer scores free text in [-1, 1].
type Analyzer interface {
	Polarity(text string) float64
}

// Result is a scored and bucketed text.
type Result struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
	Label Label   `json:"label"`
}

// Title returns the label in display case.
func (l Label) Title() string {
	switch l {
	case LabelPositive:
		return "Positive"
	case LabelNegative:
		return "Negative"
	}

	return "Neutral"
}

func (l Label) Emoji() string {
	switch l {
	case LabelPositive:
		return "🙂"
	case LabelNegative:
		return "🙁"
	}

	return "😐"
}

// Classify buckets a polarity score into a label.
func Classify(score float64) Label {
	if score > polarityBand {
		return LabelPositive
	}

	if score < -polarityBand {
		return LabelNegative
	}

	return LabelNeutral
}

// Analyze scores text with the given analyzer and buckets the score.
func Analyze(a Analyzer, text string) Result {
	score := a.Polarity(text)
	return Result{
		Text:  text,
		Score: score,
		Label: Classify(score),
	}
}
