package sentiment

import (
	"github.com/jonreiter/govader"
)

// Vader scores text with the VADER lexicon. The lexicon is read-only
// after construction, one instance serves concurrent sessions.
type Vader struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVader() *Vader {
	return &Vader{
		analyzer: govader.NewSentimentIntensityAnalyzer(),
	}
}

// Polarity returns the VADER compound score of text, in [-1, 1].
// Text with no lexicon hits, like a bare ticker symbol, scores zero.
func (v *Vader) Polarity(text string) float64 {
	return v.analyzer.PolarityScores(text).Compound
}
