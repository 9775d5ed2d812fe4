package model

// SentimentScore classifies news sentiment for a stock.
type SentimentScore string

const (
	SentimentVeryBearish SentimentScore = "very_bearish"
	SentimentBearish     SentimentScore = "bearish"
	SentimentNeutral     SentimentScore = "neutral"
	SentimentBullish     SentimentScore = "bullish"
	SentimentVeryBullish SentimentScore = "very_bullish"
)

// Valid reports whether s is one of the defined sentiment values.
func (s SentimentScore) Valid() bool {
	switch s {
	case SentimentVeryBearish, SentimentBearish, SentimentNeutral,
		SentimentBullish, SentimentVeryBullish:
		return true
	}
	return false
}
