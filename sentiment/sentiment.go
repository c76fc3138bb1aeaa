// Package sentiment classifies free-text feedback into Positive, Neutral, or
// Negative using a compound polarity score in [-1, 1].
package sentiment

import (
	"github.com/jonreiter/govader"

	"brew-and-bite-api/models"
)

// Thresholds on the compound score. Scores in (-0.05, 0.05) are Neutral.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

// Classifier is the pluggable sentiment collaborator. Implementations only
// need to honour the compound-score contract; the lexical analysis itself is
// external to this app.
type Classifier interface {
	Classify(text string) (models.Sentiment, float64)
}

// Label converts a compound polarity score to its sentiment label.
func Label(compound float64) models.Sentiment {
	switch {
	case compound >= PositiveThreshold:
		return models.SentimentPositive
	case compound <= NegativeThreshold:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// VaderClassifier scores text against the VADER lexicon.
type VaderClassifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderClassifier() *VaderClassifier {
	return &VaderClassifier{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderClassifier) Classify(text string) (models.Sentiment, float64) {
	compound := v.analyzer.PolarityScores(text).Compound
	return Label(compound), compound
}
