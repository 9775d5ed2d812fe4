package cache

import (
	"fmt"
	"log"

	"FinSight/internal/collector"
	"FinSight/internal/model"
)

// CachedQuoteFetcher wraps a QuoteFetcher with the TTL store.
type CachedQuoteFetcher struct {
	Next  collector.QuoteFetcher
	Store *Store
}

func (c *CachedQuoteFetcher) Name() string { return c.Next.Name() + "+cache" }

func (c *CachedQuoteFetcher) FetchQuote(symbol string) (*model.Quote, error) {
	key := "quote_" + symbol
	var cached model.Quote
	if c.Store.Get(key, &cached) {
		return &cached, nil
	}
	quote, err := c.Next.FetchQuote(symbol)
	if err != nil {
		return nil, err
	}
	if quote != nil {
		if err := c.Store.Set(key, quote); err != nil {
			log.Printf("[WARN] cache quote for %s: %v", symbol, err)
		}
	}
	return quote, nil
}

// CachedHistoryFetcher wraps a HistoryFetcher with the TTL store.
type CachedHistoryFetcher struct {
	Next  collector.HistoryFetcher
	Store *Store
}

func (c *CachedHistoryFetcher) Name() string { return c.Next.Name() + "+cache" }

func (c *CachedHistoryFetcher) FetchHistory(symbol string, days int) (*model.PriceSeries, error) {
	key := fmt.Sprintf("history_%s_%d", symbol, days)
	var cached model.PriceSeries
	if c.Store.Get(key, &cached) {
		return &cached, nil
	}
	series, err := c.Next.FetchHistory(symbol, days)
	if err != nil {
		return nil, err
	}
	if !series.Empty() {
		if err := c.Store.Set(key, series); err != nil {
			log.Printf("[WARN] cache history for %s: %v", symbol, err)
		}
	}
	return series, nil
}

// CachedNewsFetcher wraps a NewsFetcher with the TTL store.
type CachedNewsFetcher struct {
	Next  collector.NewsFetcher
	Store *Store
}

func (c *CachedNewsFetcher) Name() string { return c.Next.Name() + "+cache" }

func (c *CachedNewsFetcher) FetchNews(symbol string, limit int) ([]model.NewsArticle, error) {
	key := fmt.Sprintf("news_%s_%d", symbol, limit)
	var cached []model.NewsArticle
	if c.Store.Get(key, &cached) {
		return cached, nil
	}
	articles, err := c.Next.FetchNews(symbol, limit)
	if err != nil {
		return nil, err
	}
	if len(articles) > 0 {
		if err := c.Store.Set(key, articles); err != nil {
			log.Printf("[WARN] cache news for %s: %v", symbol, err)
		}
	}
	return articles, nil
}
