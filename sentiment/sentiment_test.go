package sentiment

import (
	"testing"

	"brew-and-bite-api/models"
)

func TestLabelThresholds(t *testing.T) {
	cases := []struct {
		compound float64
		want     models.Sentiment
	}{
		{0.05, models.SentimentPositive},
		{0.9, models.SentimentPositive},
		{-0.05, models.SentimentNegative},
		{-0.9, models.SentimentNegative},
		{0.0, models.SentimentNeutral},
		{0.049, models.SentimentNeutral},
		{-0.049, models.SentimentNeutral},
	}
	for _, tc := range cases {
		if got := Label(tc.compound); got != tc.want {
			t.Fatalf("Label(%v): expected %s, got %s", tc.compound, tc.want, got)
		}
	}
}

func TestVaderClassifier(t *testing.T) {
	classifier := NewVaderClassifier()

	label, compound := classifier.Classify("The food was absolutely wonderful, best dinner in years!")
	if label != models.SentimentPositive {
		t.Fatalf("expected Positive, got %s (compound %v)", label, compound)
	}

	label, compound = classifier.Classify("Terrible service, the food was cold and awful.")
	if label != models.SentimentNegative {
		t.Fatalf("expected Negative, got %s (compound %v)", label, compound)
	}
}
