package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"FinSight/internal/model"
)

// NewsAPIFetcher fetches financial news from NewsAPI.org. Requires an
// API key.
type NewsAPIFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewNewsAPIFetcher creates a NewsAPI fetcher with optional proxy
// support.
func NewNewsAPIFetcher(apiKey, proxyURL string) *NewsAPIFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &NewsAPIFetcher{
		BaseURL: "https://newsapi.org",
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   10 * time.Second,
			Transport: transport,
		},
	}
}

func (f *NewsAPIFetcher) Name() string { return "newsapi" }

// newsAPIResponse is the expected JSON shape from the /v2/everything
// endpoint.
type newsAPIResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string  `json:"title"`
		Description *string `json:"description"`
		URL         string  `json:"url"`
		PublishedAt string  `json:"publishedAt"`
	} `json:"articles"`
}

// FetchNews fetches up to `limit` articles about a symbol from the last
// seven days, most relevant first.
func (f *NewsAPIFetcher) FetchNews(symbol string, limit int) ([]model.NewsArticle, error) {
	from := time.Now().AddDate(0, 0, -7).Format("2006-01-02")
	params := url.Values{}
	params.Set("q", symbol+" stock")
	params.Set("from", from)
	params.Set("sortBy", "relevancy")
	params.Set("language", "en")
	params.Set("pageSize", fmt.Sprintf("%d", limit))
	params.Set("apiKey", f.APIKey)

	endpoint := fmt.Sprintf("%s/v2/everything?%s", f.BaseURL, params.Encode())
	resp, err := f.Client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("newsapi fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("newsapi read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi: status %d, body: %s", resp.StatusCode, string(body))
	}

	var payload newsAPIResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("newsapi decode: %w", err)
	}
	if payload.Status != "ok" {
		return nil, fmt.Errorf("newsapi error: %s", payload.Message)
	}

	articles := make([]model.NewsArticle, 0, len(payload.Articles))
	for _, item := range payload.Articles {
		published, err := time.Parse(time.RFC3339, item.PublishedAt)
		if err != nil {
			published = time.Time{}
		}
		source := item.Source.Name
		if source == "" {
			source = "Unknown"
		}
		articles = append(articles, model.NewsArticle{
			Title:       item.Title,
			Description: item.Description,
			Source:      source,
			URL:         item.URL,
			PublishedAt: published,
			Symbol:      symbol,
		})
	}
	if len(articles) > limit {
		articles = articles[:limit]
	}
	return articles, nil
}
