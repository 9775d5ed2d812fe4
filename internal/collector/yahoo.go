package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"FinSight/internal/model"
)

// YahooFetcher fetches quotes, price history, and news from the Yahoo
// Finance public API. It implements QuoteFetcher, HistoryFetcher, and
// NewsFetcher.
type YahooFetcher struct {
	Client  *http.Client
	BaseURL string
}

// NewYahooFetcher creates a Yahoo Finance fetcher with optional proxy
// support.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		BaseURL: "https://query1.finance.yahoo.com",
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

func (f *YahooFetcher) get(u string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// yahooChart is the response structure from the Yahoo chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func parseChart(symbol string, body []byte) (*model.PriceSeries, error) {
	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned")
	}

	result := chart.Chart.Result[0]
	closes := result.Indicators.Quote[0].Close
	points := make([]model.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue // null bars on holidays
		}
		points = append(points, model.PricePoint{
			Date:  time.Unix(ts, 0),
			Close: *closes[i],
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })

	return &model.PriceSeries{Symbol: symbol, Points: points, FetchedAt: time.Now()}, nil
}

// FetchHistory fetches up to `days` daily closes, oldest first.
func (f *YahooFetcher) FetchHistory(symbol string, days int) (*model.PriceSeries, error) {
	rng := "2y"
	switch {
	case days <= 30:
		rng = "1mo"
	case days <= 90:
		rng = "3mo"
	case days <= 180:
		rng = "6mo"
	case days <= 365:
		rng = "1y"
	}
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=%s",
		f.BaseURL, url.PathEscape(symbol), rng)
	body, err := f.get(u)
	if err != nil {
		return nil, err
	}
	series, err := parseChart(symbol, body)
	if err != nil {
		return nil, err
	}
	if len(series.Points) > days {
		series.Points = series.Points[len(series.Points)-days:]
	}
	return series, nil
}

// yahooValue is Yahoo's number wrapper ({"raw": 1.23, "fmt": "1.23"}).
type yahooValue struct {
	Raw *float64 `json:"raw"`
}

// yahooSummary is the response structure from the quoteSummary API.
type yahooSummary struct {
	QuoteSummary struct {
		Result []struct {
			Price struct {
				RegularMarketPrice yahooValue `json:"regularMarketPrice"`
				MarketCap          yahooValue `json:"marketCap"`
				LongName           *string    `json:"longName"`
				ShortName          *string    `json:"shortName"`
			} `json:"price"`
			SummaryDetail struct {
				TrailingPE       yahooValue `json:"trailingPE"`
				DividendYield    yahooValue `json:"dividendYield"`
				FiftyTwoWeekHigh yahooValue `json:"fiftyTwoWeekHigh"`
				FiftyTwoWeekLow  yahooValue `json:"fiftyTwoWeekLow"`
			} `json:"summaryDetail"`
			AssetProfile struct {
				Sector   *string `json:"sector"`
				Industry *string `json:"industry"`
			} `json:"assetProfile"`
		} `json:"result"`
		Error *struct {
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

func toDecimal(v yahooValue) *decimal.Decimal {
	if v.Raw == nil {
		return nil
	}
	d := decimal.NewFromFloat(*v.Raw)
	return &d
}

func parseQuote(body []byte) (*model.Quote, error) {
	var summary yahooSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if summary.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", summary.QuoteSummary.Error.Description)
	}
	if len(summary.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("yahoo: no quote returned")
	}

	r := summary.QuoteSummary.Result[0]
	q := &model.Quote{
		Price:            toDecimal(r.Price.RegularMarketPrice),
		MarketCap:        toDecimal(r.Price.MarketCap),
		Sector:           r.AssetProfile.Sector,
		Industry:         r.AssetProfile.Industry,
		PERatio:          r.SummaryDetail.TrailingPE.Raw,
		DividendYield:    r.SummaryDetail.DividendYield.Raw,
		FiftyTwoWeekHigh: toDecimal(r.SummaryDetail.FiftyTwoWeekHigh),
		FiftyTwoWeekLow:  toDecimal(r.SummaryDetail.FiftyTwoWeekLow),
	}
	if r.Price.LongName != nil {
		q.CompanyName = r.Price.LongName
	} else if r.Price.ShortName != nil {
		q.CompanyName = r.Price.ShortName
	}
	return q, nil
}

// FetchQuote fetches the current quote and company profile for a
// symbol. Fields Yahoo does not report come back nil.
func (f *YahooFetcher) FetchQuote(symbol string) (*model.Quote, error) {
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=price,summaryDetail,assetProfile",
		f.BaseURL, url.PathEscape(symbol))
	body, err := f.get(u)
	if err != nil {
		return nil, err
	}
	return parseQuote(body)
}

// yahooSearch is the response structure from the search API, of which
// only the news section is used.
type yahooSearch struct {
	News []struct {
		Title               string `json:"title"`
		Publisher           string `json:"publisher"`
		Link                string `json:"link"`
		ProviderPublishTime int64  `json:"providerPublishTime"`
	} `json:"news"`
}

// FetchNews fetches recent news items for a symbol.
func (f *YahooFetcher) FetchNews(symbol string, limit int) ([]model.NewsArticle, error) {
	u := fmt.Sprintf("%s/v1/finance/search?q=%s&newsCount=%d",
		f.BaseURL, url.QueryEscape(symbol), limit)
	body, err := f.get(u)
	if err != nil {
		return nil, err
	}

	var search yahooSearch
	if err := json.Unmarshal(body, &search); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}

	articles := make([]model.NewsArticle, 0, len(search.News))
	for _, item := range search.News {
		source := item.Publisher
		if source == "" {
			source = "Unknown"
		}
		articles = append(articles, model.NewsArticle{
			Title:       item.Title,
			Source:      source,
			URL:         item.Link,
			PublishedAt: time.Unix(item.ProviderPublishTime, 0),
			Symbol:      symbol,
		})
	}
	if len(articles) > limit {
		articles = articles[:limit]
	}
	return articles, nil
}
