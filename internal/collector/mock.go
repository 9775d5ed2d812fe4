package collector

import "FinSight/internal/model"

// MockFetcher returns controllable fixed data for development and
// testing. It implements all three fetcher interfaces.
type MockFetcher struct {
	Quotes   map[string]*model.Quote
	Series   map[string]*model.PriceSeries
	Articles map[string][]model.NewsArticle

	QuoteErr   error
	HistoryErr error
	NewsErr    error

	QuoteCalls   []string
	HistoryCalls []string
	NewsCalls    []string
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchQuote(symbol string) (*model.Quote, error) {
	m.QuoteCalls = append(m.QuoteCalls, symbol)
	if m.QuoteErr != nil {
		return nil, m.QuoteErr
	}
	return m.Quotes[symbol], nil
}

func (m *MockFetcher) FetchHistory(symbol string, days int) (*model.PriceSeries, error) {
	m.HistoryCalls = append(m.HistoryCalls, symbol)
	if m.HistoryErr != nil {
		return nil, m.HistoryErr
	}
	if s, ok := m.Series[symbol]; ok {
		return s, nil
	}
	return &model.PriceSeries{Symbol: symbol}, nil
}

func (m *MockFetcher) FetchNews(symbol string, limit int) ([]model.NewsArticle, error) {
	m.NewsCalls = append(m.NewsCalls, symbol)
	if m.NewsErr != nil {
		return nil, m.NewsErr
	}
	articles := m.Articles[symbol]
	if len(articles) > limit {
		articles = articles[:limit]
	}
	return articles, nil
}
