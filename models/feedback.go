package models

import "time"

// Sentiment labels assigned by the classifier.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
)

type Feedback struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"size:500;not null"`
	Sentiment Sentiment `json:"sentiment" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
