// Package ai talks to an OpenAI-compatible chat-completions endpoint
// for sentiment analysis and portfolio insights. Responses are strict
// JSON; anything that fails to parse is reported as an error and
// treated as an absent result by the caller.
package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"FinSight/internal/model"
)

// SentimentAnalyzer annotates news articles with sentiment for one
// symbol.
type SentimentAnalyzer interface {
	AnalyzeSentiment(symbol string, articles []model.NewsArticle) (*model.SentimentResult, error)
}

// InsightGenerator produces a portfolio-level assessment from a summary
// and the per-stock analyses.
type InsightGenerator interface {
	GenerateInsights(portfolioSummary string, analyses map[string]*model.StockAnalysis) (*model.PortfolioInsights, error)
}

// Client calls an OpenAI-compatible chat-completions API.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	httpc   *http.Client
}

// NewClient creates an AI client. An empty API key yields a client that
// reports itself unconfigured; callers should skip AI passes then.
func NewClient(apiKey, modelName, baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &Client{
		apiKey:  apiKey,
		model:   modelName,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 60 * time.Second},
	}
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool { return c.apiKey != "" }

// chatResponse is the subset of the chat-completions response we read.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// complete sends one system+user exchange and returns the raw content
// of the first choice.
func (c *Client) complete(system, user string) (string, error) {
	if !c.Configured() {
		return "", fmt.Errorf("ai client not configured")
	}

	payload := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"response_format": map[string]string{"type": "json_object"},
		"temperature":     0.3,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("ai request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ai read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai api error %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("ai decode: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("ai: no choices in response")
	}
	return parsed.Choices[0].Message.Content, nil
}

// sentimentResponse is the JSON contract for the sentiment prompt.
type sentimentResponse struct {
	Articles []struct {
		Index     int      `json:"index"`
		Sentiment string   `json:"sentiment"`
		Reasoning string   `json:"reasoning"`
		KeyPoints []string `json:"key_points"`
	} `json:"articles"`
	OverallSentiment string `json:"overall_sentiment"`
	Summary          string `json:"summary"`
}

// AnalyzeSentiment rates each article and the overall news sentiment
// for a symbol. The returned articles are annotated copies of the
// input; articles the model skipped or rated with an unknown value stay
// unannotated.
func (c *Client) AnalyzeSentiment(symbol string, articles []model.NewsArticle) (*model.SentimentResult, error) {
	var sb strings.Builder
	for i, a := range articles {
		desc := ""
		if a.Description != nil {
			desc = *a.Description
		}
		fmt.Fprintf(&sb, "[%d] %s (%s, %s)\n%s\n\n",
			i, a.Title, a.Source, a.PublishedAt.Format("2006-01-02"), desc)
	}

	content, err := c.complete(sentimentSystemPrompt,
		fmt.Sprintf(sentimentUserPrompt, symbol, sb.String(), symbol))
	if err != nil {
		return nil, err
	}

	var parsed sentimentResponse
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("parse sentiment response: %w", err)
	}
	overall := model.SentimentScore(parsed.OverallSentiment)
	if !overall.Valid() {
		return nil, fmt.Errorf("parse sentiment response: unknown overall sentiment %q", parsed.OverallSentiment)
	}

	annotated := make([]model.NewsArticle, len(articles))
	copy(annotated, articles)
	for _, item := range parsed.Articles {
		if item.Index < 0 || item.Index >= len(annotated) {
			continue
		}
		score := model.SentimentScore(item.Sentiment)
		if !score.Valid() {
			continue
		}
		a := &annotated[item.Index]
		a.Sentiment = &score
		if item.Reasoning != "" {
			reasoning := item.Reasoning
			a.SentimentReasoning = &reasoning
		}
		a.KeyPoints = item.KeyPoints
	}

	return &model.SentimentResult{
		Articles:         annotated,
		OverallSentiment: overall,
		Summary:          parsed.Summary,
	}, nil
}

// GenerateInsights produces a portfolio-level assessment.
func (c *Client) GenerateInsights(portfolioSummary string, analyses map[string]*model.StockAnalysis) (*model.PortfolioInsights, error) {
	stockText, err := json.MarshalIndent(analyses, "", "  ")
	if err != nil {
		return nil, err
	}

	content, err := c.complete(insightsSystemPrompt,
		fmt.Sprintf(insightsUserPrompt, portfolioSummary, string(stockText)))
	if err != nil {
		return nil, err
	}

	var insights model.PortfolioInsights
	if err := json.Unmarshal([]byte(content), &insights); err != nil {
		return nil, fmt.Errorf("parse insights response: %w", err)
	}
	return &insights, nil
}
