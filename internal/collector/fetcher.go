package collector

import "FinSight/internal/model"

// QuoteFetcher fetches the current market snapshot for a symbol. A
// returned quote may have any subset of its fields missing.
type QuoteFetcher interface {
	FetchQuote(symbol string) (*model.Quote, error)
	Name() string
}

// HistoryFetcher fetches daily closing prices for a symbol, oldest
// first. A short or empty series is a valid result; the analysis layer
// treats it as insufficient history.
type HistoryFetcher interface {
	FetchHistory(symbol string, days int) (*model.PriceSeries, error)
	Name() string
}

// NewsFetcher fetches recent news articles for a symbol, at most
// `limit` of them.
type NewsFetcher interface {
	FetchNews(symbol string, limit int) ([]model.NewsArticle, error)
	Name() string
}
