package cache

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"FinSight/internal/collector"
	"FinSight/internal/model"
)

func openTestStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cache.db"), ttl)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_SetGet(t *testing.T) {
	s := openTestStore(t, time.Hour)

	type payload struct {
		Symbol string  `json:"symbol"`
		Price  float64 `json:"price"`
	}
	if err := s.Set("quote_AAPL", payload{Symbol: "AAPL", Price: 150.25}); err != nil {
		t.Fatal(err)
	}

	var got payload
	if !s.Get("quote_AAPL", &got) {
		t.Fatal("expected a cache hit")
	}
	if got.Symbol != "AAPL" || got.Price != 150.25 {
		t.Errorf("unexpected payload %+v", got)
	}

	if s.Get("quote_GOOGL", &got) {
		t.Error("expected a miss for an unknown key")
	}
}

func TestStore_Overwrite(t *testing.T) {
	s := openTestStore(t, time.Hour)

	if err := s.Set("k", "first"); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("k", "second"); err != nil {
		t.Fatal(err)
	}
	var got string
	if !s.Get("k", &got) || got != "second" {
		t.Errorf("expected the overwritten value, got %q", got)
	}
}

func TestStore_Expiry(t *testing.T) {
	s := openTestStore(t, time.Hour)
	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	if err := s.Set("k", 42); err != nil {
		t.Fatal(err)
	}

	var got int
	s.now = func() time.Time { return base.Add(59 * time.Minute) }
	if !s.Get("k", &got) || got != 42 {
		t.Error("entry must still be live before the TTL elapses")
	}

	s.now = func() time.Time { return base.Add(time.Hour) }
	if s.Get("k", &got) {
		t.Error("entry must expire once the TTL elapses")
	}
}

func TestStore_Purge(t *testing.T) {
	s := openTestStore(t, time.Hour)
	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	if err := s.Set("old", 1); err != nil {
		t.Fatal(err)
	}
	s.now = func() time.Time { return base.Add(30 * time.Minute) }
	if err := s.Set("fresh", 2); err != nil {
		t.Fatal(err)
	}

	s.now = func() time.Time { return base.Add(61 * time.Minute) }
	if err := s.Purge(); err != nil {
		t.Fatal(err)
	}

	var got int
	if s.Get("old", &got) {
		t.Error("purge must drop the expired entry")
	}
	if !s.Get("fresh", &got) || got != 2 {
		t.Error("purge must keep live entries")
	}
}

func TestCachedQuoteFetcher(t *testing.T) {
	s := openTestStore(t, time.Hour)
	price := decimal.NewFromInt(150)
	mock := &collector.MockFetcher{
		Quotes: map[string]*model.Quote{"AAPL": {Price: &price}},
	}
	cached := &CachedQuoteFetcher{Next: mock, Store: s}

	if cached.Name() != "mock+cache" {
		t.Errorf("unexpected name %q", cached.Name())
	}

	for i := 0; i < 3; i++ {
		q, err := cached.FetchQuote("AAPL")
		if err != nil {
			t.Fatal(err)
		}
		if q == nil || q.Price == nil || !q.Price.Equal(price) {
			t.Fatalf("call %d: unexpected quote %+v", i, q)
		}
	}
	if len(mock.QuoteCalls) != 1 {
		t.Errorf("expected one upstream call, got %d", len(mock.QuoteCalls))
	}
}

func TestCachedHistoryFetcher_KeyIncludesDays(t *testing.T) {
	s := openTestStore(t, time.Hour)
	points := []model.PricePoint{{Date: time.Now(), Close: 100}}
	mock := &collector.MockFetcher{
		Series: map[string]*model.PriceSeries{
			"AAPL": {Symbol: "AAPL", Points: points},
		},
	}
	cached := &CachedHistoryFetcher{Next: mock, Store: s}

	if _, err := cached.FetchHistory("AAPL", 200); err != nil {
		t.Fatal(err)
	}
	if _, err := cached.FetchHistory("AAPL", 200); err != nil {
		t.Fatal(err)
	}
	if len(mock.HistoryCalls) != 1 {
		t.Fatalf("expected one upstream call for the same window, got %d", len(mock.HistoryCalls))
	}

	if _, err := cached.FetchHistory("AAPL", 30); err != nil {
		t.Fatal(err)
	}
	if len(mock.HistoryCalls) != 2 {
		t.Errorf("a different window must miss the cache, got %d calls", len(mock.HistoryCalls))
	}
}

func TestCachedHistoryFetcher_EmptyNotCached(t *testing.T) {
	s := openTestStore(t, time.Hour)
	mock := &collector.MockFetcher{} // empty series for every symbol
	cached := &CachedHistoryFetcher{Next: mock, Store: s}

	for i := 0; i < 2; i++ {
		if _, err := cached.FetchHistory("AAPL", 200); err != nil {
			t.Fatal(err)
		}
	}
	if len(mock.HistoryCalls) != 2 {
		t.Errorf("empty results must not be cached, got %d calls", len(mock.HistoryCalls))
	}
}

func TestCachedNewsFetcher_ErrorPassthrough(t *testing.T) {
	s := openTestStore(t, time.Hour)
	wantErr := errors.New("provider down")
	mock := &collector.MockFetcher{NewsErr: wantErr}
	cached := &CachedNewsFetcher{Next: mock, Store: s}

	if _, err := cached.FetchNews("AAPL", 5); !errors.Is(err, wantErr) {
		t.Errorf("expected the upstream error, got %v", err)
	}

	// The failure must not poison the cache.
	mock.NewsErr = nil
	mock.Articles = map[string][]model.NewsArticle{
		"AAPL": {{Title: "t", Source: "s", Symbol: "AAPL", PublishedAt: time.Now()}},
	}
	articles, err := cached.FetchNews("AAPL", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(articles) != 1 {
		t.Errorf("expected one article after recovery, got %d", len(articles))
	}
}
