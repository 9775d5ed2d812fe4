package model

import "time"

// NewsArticle is a single news item about a stock. Sentiment fields are
// filled by the AI sentiment pass and stay nil when it does not run.
type NewsArticle struct {
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
	Symbol      string    `json:"symbol"`

	Sentiment          *SentimentScore `json:"sentiment"`
	SentimentReasoning *string         `json:"sentiment_reasoning"`
	KeyPoints          []string        `json:"key_points"`
}

// SentimentResult is the outcome of a sentiment analysis over a batch of
// articles for one symbol.
type SentimentResult struct {
	Articles         []NewsArticle  `json:"articles"`
	OverallSentiment SentimentScore `json:"overall_sentiment"`
	Summary          string         `json:"summary"`
}
